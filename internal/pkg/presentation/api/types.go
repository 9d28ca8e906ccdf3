package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

type ApiResponse struct {
	Meta  *meta  `json:"meta,omitempty"`
	Data  any    `json:"data"`
	Links *links `json:"links,omitempty"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func newApiResponse[T any](collection types.Collection[T], requestURL *url.URL) ApiResponse {
	response := ApiResponse{
		Meta: &meta{
			TotalRecords: collection.TotalCount,
			Count:        collection.Count,
		},
		Data: collection.Data,
	}

	if collection.Limit == 0 {
		return response
	}

	response.Meta.Offset = &collection.Offset
	response.Meta.Limit = &collection.Limit

	link := func(offset uint64) *string {
		q := requestURL.Query()
		q.Set("offset", fmt.Sprintf("%d", offset))
		q.Set("limit", fmt.Sprintf("%d", collection.Limit))
		s := requestURL.Path + "?" + q.Encode()
		return &s
	}

	response.Links = &links{
		Self:  link(collection.Offset),
		First: link(0),
	}

	if collection.Offset > 0 {
		prev := uint64(0)
		if collection.Offset > collection.Limit {
			prev = collection.Offset - collection.Limit
		}
		response.Links.Prev = link(prev)
	}

	if collection.Offset+collection.Count < collection.TotalCount {
		response.Links.Next = link(collection.Offset + collection.Limit)
	}

	if collection.TotalCount > collection.Limit {
		last := ((collection.TotalCount - 1) / collection.Limit) * collection.Limit
		response.Links.Last = link(last)
	}

	return response
}
