package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/procurement-service/internal/domain"
)

func TestEditTicketRequestOperation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want domain.Operation
	}{
		{"edit title", `{"op":"editTitle","data":{"title":"Ticket 2"}}`, domain.EditTitle{Title: "Ticket 2"}},
		{"edit description", `{"op":"editDescription","data":{"description":"urgent"}}`, domain.EditDescription{Description: "urgent"}},
		{"cancel", `{"op":"cancel"}`, domain.Cancel{}},
		{"confirm", `{"op":"confirm","data":{"price":100}}`, domain.Confirm{Price: 100}},
		{"deny", `{"op":"deny"}`, domain.Deny{}},
		{"mark as paid", `{"op":"markAsPaid"}`, domain.MarkAsPaid{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req EditTicketRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))

			op, err := req.Operation()
			require.NoError(t, err)
			assert.Equal(t, tc.want, op)
		})
	}
}

func TestEditTicketRequestUnknownOp(t *testing.T) {
	var req EditTicketRequest
	require.NoError(t, json.Unmarshal([]byte(`{"op":"approve"}`), &req))

	_, err := req.Operation()
	assert.Error(t, err)
}

func TestEditTicketRequestMalformedData(t *testing.T) {
	var req EditTicketRequest
	require.NoError(t, json.Unmarshal([]byte(`{"op":"confirm","data":{"price":"free"}}`), &req))

	_, err := req.Operation()
	assert.Error(t, err)
}
