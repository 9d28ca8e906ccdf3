package alerts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/storage"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

// inMemoryAlertRepository honors the query conditions the service relies on
// for dedup, backed by a slice.
func inMemoryAlertRepository() (*AlertRepositoryMock, *[]types.Alert) {
	var mu sync.Mutex
	stored := &[]types.Alert{}

	mock := &AlertRepositoryMock{}

	mock.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		condition := &storage.Condition{}
		for _, f := range conditions {
			f(condition)
		}

		mu.Lock()
		defer mu.Unlock()

		matches := make([]types.Alert, 0)
		for _, a := range *stored {
			if condition.PrinterID != "" && a.PrinterID != condition.PrinterID {
				continue
			}
			if condition.AlertType != "" && a.AlertType != condition.AlertType {
				continue
			}
			if condition.Acknowledged != nil && a.Acknowledged != *condition.Acknowledged {
				continue
			}
			if !condition.CreatedAfter.IsZero() && !a.CreatedAt.After(condition.CreatedAfter) {
				continue
			}
			matches = append(matches, a)
		}

		return types.Collection[types.Alert]{
			Data:       matches,
			Count:      uint64(len(matches)),
			TotalCount: uint64(len(matches)),
		}, nil
	}

	mock.AddAlertFunc = func(ctx context.Context, alert types.Alert) error {
		mu.Lock()
		defer mu.Unlock()
		*stored = append(*stored, alert)
		return nil
	}

	return mock, stored
}

func testSetup(t *testing.T) (*is.I, context.Context, *alertSvc, *AlertRepositoryMock, *[]types.Alert) {
	is := is.New(t)

	repo, stored := inMemoryAlertRepository()

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(repo, msgCtx, nil).(*alertSvc)

	return is, context.Background(), svc, repo, stored
}

func candidate() types.Alert {
	return types.Alert{
		PrinterID:   "printer-01",
		PrinterName: "Front Office",
		AlertType:   types.AlertTypeTonerLow,
		Severity:    types.AlertSeverityHigh,
		Message:     "Black ink level is 15%",
	}
}

func TestAddCreatesAlert(t *testing.T) {
	is, ctx, svc, _, stored := testSetup(t)

	created, err := svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(created)
	is.Equal(len(*stored), 1)
	is.True((*stored)[0].ID != "")
	is.True(!(*stored)[0].CreatedAt.IsZero())
}

func TestAddSuppressesDuplicateWithinWindow(t *testing.T) {
	is, ctx, svc, _, stored := testSetup(t)

	t0 := time.Now().UTC()
	svc.nowFunc = func() time.Time { return t0 }

	created, err := svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(created)

	// one minute later, same condition still observed
	svc.nowFunc = func() time.Time { return t0.Add(time.Minute) }

	created, err = svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(!created)
	is.Equal(len(*stored), 1)
}

func TestAddCreatesNewAlertAfterWindowElapsed(t *testing.T) {
	is, ctx, svc, _, stored := testSetup(t)

	t0 := time.Now().UTC()
	svc.nowFunc = func() time.Time { return t0 }

	created, err := svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(created)

	// two hours later the window has elapsed, even though the first alert
	// was never acknowledged
	svc.nowFunc = func() time.Time { return t0.Add(2 * time.Hour) }

	created, err = svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(created)
	is.Equal(len(*stored), 2)
}

func TestAddDoesNotSuppressOtherAlertTypes(t *testing.T) {
	is, ctx, svc, _, stored := testSetup(t)

	created, err := svc.Add(ctx, candidate())
	is.NoErr(err)
	is.True(created)

	offline := candidate()
	offline.AlertType = types.AlertTypeOffline

	created, err = svc.Add(ctx, offline)
	is.NoErr(err)
	is.True(created)
	is.Equal(len(*stored), 2)
}

func TestConcurrentAddsOfSameCandidateCreateOne(t *testing.T) {
	is, ctx, svc, _, stored := testSetup(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Add(ctx, candidate())
		}()
	}
	wg.Wait()

	is.Equal(len(*stored), 1)
}

func TestAddPublishesAlertCreated(t *testing.T) {
	is := is.New(t)

	repo, _ := inMemoryAlertRepository()

	published := make([]string, 0)
	var mu sync.Mutex

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			mu.Lock()
			defer mu.Unlock()
			published = append(published, message.TopicName())
			return nil
		},
	}

	svc := New(repo, msgCtx, nil)

	created, err := svc.Add(context.Background(), candidate())
	is.NoErr(err)
	is.True(created)
	is.Equal(published, []string{"alerts.alertCreated"})
}

func TestRemoveOldAlertsOnlyTargetsAcknowledged(t *testing.T) {
	is, ctx, svc, repo, _ := testSetup(t)

	repo.DeleteAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error) {
		condition := &storage.Condition{}
		for _, f := range conditions {
			f(condition)
		}

		is.True(condition.Acknowledged != nil)
		is.True(*condition.Acknowledged)
		is.True(!condition.AcknowledgedBefore.IsZero())

		return 1, nil
	}

	n, err := svc.RemoveOldAlerts(ctx)
	is.NoErr(err)
	is.Equal(n, int64(1))
	is.Equal(len(repo.DeleteAlertsCalls()), 1)
}

func TestAcknowledgeNotFound(t *testing.T) {
	is, ctx, svc, repo, _ := testSetup(t)

	repo.AcknowledgeAlertFunc = func(ctx context.Context, alertID, acknowledgedBy string, acknowledgedAt time.Time) error {
		return storage.ErrNoRows
	}

	err := svc.Acknowledge(ctx, "nope", "admin")
	is.True(err == ErrAlertNotFound)
}
