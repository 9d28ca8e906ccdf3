package snmp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

var (
	// ErrConnectivity means the device could not be reached before the
	// timeout/retry budget ran out.
	ErrConnectivity = errors.New("device unreachable")
	// ErrProtocol means the device answered with something other than the
	// response shape the catalog get expects.
	ErrProtocol = errors.New("malformed snmp response")
)

const (
	defaultPort    uint16 = 161
	defaultTimeout        = 5 * time.Second
	defaultRetries        = 3
)

// RawValue is one varbind outcome. Absent values (noSuchObject and friends)
// keep Present false, which is distinct from a present zero.
type RawValue struct {
	Present bool
	IsInt   bool
	Int     int64
	Text    string
}

// RawResult is the untyped outcome of one batched catalog read.
type RawResult struct {
	Values [numFields]RawValue
}

func (r RawResult) Get(f Field) RawValue {
	return r.Values[f]
}

// Degenerate reports whether every color level came back zero, unknown or
// absent. Such a read is treated as "this protocol path is not populated for
// this device" rather than four empty cartridges, and routes to the fallback.
func (r RawResult) Degenerate() bool {
	for _, f := range []Field{FieldCyanLevel, FieldMagentaLevel, FieldYellowLevel, FieldBlackLevel} {
		v := r.Values[f]
		if !v.Present {
			continue
		}
		if v.IsInt && v.Int > 0 {
			return false
		}
		if !v.IsInt && textCarriesLevel(v.Text) {
			return false
		}
	}
	return true
}

// textCarriesLevel reports whether a textual supply value holds a positive
// level. "unknown", "not installed" and "empty" all resolve to zero in the
// normalizer, so they do not count.
func textCarriesLevel(s string) bool {
	lowered := strings.ToLower(strings.TrimSpace(s))

	if lowered == "" {
		return false
	}
	if strings.Contains(lowered, "unknown") || strings.Contains(lowered, "not installed") || strings.Contains(lowered, "empty") {
		return false
	}

	for _, r := range lowered {
		if r >= '1' && r <= '9' {
			return true
		}
	}

	return false
}

type Reader struct {
	port    uint16
	timeout time.Duration
	retries int
}

type ReaderOption func(*Reader)

func WithTimeout(timeout time.Duration) ReaderOption {
	return func(r *Reader) {
		r.timeout = timeout
	}
}

func WithRetries(retries int) ReaderOption {
	return func(r *Reader) {
		r.retries = retries
	}
}

func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{
		port:    defaultPort,
		timeout: defaultTimeout,
		retries: defaultRetries,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Reader) newClient(ctx context.Context, addr, community string) *gosnmp.GoSNMP {
	if community == "" {
		community = "public"
	}

	return &gosnmp.GoSNMP{
		Context:   ctx,
		Target:    addr,
		Port:      r.port,
		Community: community,
		Version:   gosnmp.Version2c,
		Timeout:   r.timeout,
		Retries:   r.retries,
		MaxOids:   gosnmp.MaxOids,
	}
}

// Read issues one batched get over the whole catalog. The session lives for
// the duration of the call only.
func (r *Reader) Read(ctx context.Context, addr, community string) (RawResult, error) {
	client := r.newClient(ctx, addr, community)

	if err := client.Connect(); err != nil {
		return RawResult{}, fmt.Errorf("%w: %s", ErrConnectivity, err.Error())
	}
	defer client.Conn.Close()

	packet, err := client.Get(catalogOIDs())
	if err != nil {
		return RawResult{}, wrapGetError(err)
	}

	return resultFromPacket(packet)
}

// TestConnection probes the device with a single sysDescr get and returns the
// reported device description.
func (r *Reader) TestConnection(ctx context.Context, addr, community string) (string, error) {
	client := r.newClient(ctx, addr, community)

	if err := client.Connect(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrConnectivity, err.Error())
	}
	defer client.Conn.Close()

	packet, err := client.Get([]string{oidDeviceDescription})
	if err != nil {
		return "", wrapGetError(err)
	}

	if packet == nil || len(packet.Variables) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrProtocol)
	}

	v := valueFromPDU(packet.Variables[0])
	if !v.Present {
		return "unknown device", nil
	}

	return v.Text, nil
}

// wrapGetError classifies a request failure. Network level errors and
// timeouts mean the device is unreachable; anything else is a response we
// could not make sense of. gosnmp reports its timeouts as plain strings, so
// those are matched by text.
func wrapGetError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || strings.Contains(err.Error(), "timeout") {
		return fmt.Errorf("%w: %s", ErrConnectivity, err.Error())
	}

	return fmt.Errorf("%w: %s", ErrProtocol, err.Error())
}

func resultFromPacket(packet *gosnmp.SnmpPacket) (RawResult, error) {
	if packet == nil {
		return RawResult{}, fmt.Errorf("%w: empty response", ErrProtocol)
	}

	if packet.Error != gosnmp.NoError && packet.Error != gosnmp.NoSuchName {
		return RawResult{}, fmt.Errorf("%w: response error %d", ErrProtocol, packet.Error)
	}

	if len(packet.Variables) != len(catalog) {
		return RawResult{}, fmt.Errorf("%w: expected %d varbinds, got %d", ErrProtocol, len(catalog), len(packet.Variables))
	}

	result := RawResult{}

	for i, pdu := range packet.Variables {
		result.Values[catalog[i].field] = valueFromPDU(pdu)
	}

	return result, nil
}

func valueFromPDU(pdu gosnmp.SnmpPDU) RawValue {
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView, gosnmp.Null:
		return RawValue{}
	case gosnmp.OctetString:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return RawValue{}
		}
		return RawValue{Present: true, Text: string(b)}
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Gauge32, gosnmp.Counter64, gosnmp.Uinteger32:
		n := gosnmp.ToBigInt(pdu.Value).Int64()
		return RawValue{Present: true, IsInt: true, Int: n, Text: fmt.Sprintf("%d", n)}
	default:
		return RawValue{}
	}
}
