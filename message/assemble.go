package message

import (
	"strings"

	"github.com/zostay/go-eml/message/header"
)

// MessageIDDomain is the domain part of generated Message-ID fields.
const MessageIDDomain = "generated.local"

// AssembleHeader builds the top-level header for req. It starts from a copy of
// req.Headers and then:
//
//   - sets Subject, From, To and Cc from the request, when given,
//   - fails with ErrMissingRecipient unless To has a non-empty value,
//   - resolves the Content-Type and boundary (see ResolveBoundary), keeping the
//     casing of an existing Content-Type field name,
//   - adds Message-ID and MIME-Version, unless present in any casing.
//
// The request itself is not modified.
func AssembleHeader(req *Request, ids IDGenerator) (*header.Header, Boundary, error) {
	h := req.Headers.Clone()

	if req.Subject != nil {
		h.Set(header.Subject, *req.Subject)
	}
	if len(req.From) > 0 {
		h.Set(header.From, req.From.String())
	}
	if len(req.To) > 0 {
		h.Set(header.To, req.To.String())
	}
	if len(req.Cc) > 0 {
		h.Set(header.Cc, req.Cc.String())
	}

	if !hasRecipient(h) {
		return nil, Boundary{}, ErrMissingRecipient
	}

	ctName, ctValues, found := h.Lookup(header.ContentType)
	if !found {
		ctName = header.ContentType
	}

	var ct string
	hasCT := len(ctValues) > 0
	if hasCT {
		ct = ctValues[0]
	}

	b := ResolveBoundary(ct, hasCT, ids)
	h.Set(ctName, b.ContentType)

	if !h.Has(header.MessageID) {
		h.Set(header.MessageID, "<"+ids.NewID()+"@"+MessageIDDomain+">")
	}

	if !h.Has(header.MIMEVersion) {
		h.Set(header.MIMEVersion, "1.0")
	}

	return h, b, nil
}

// hasRecipient returns true if the To field has at least one non-blank value.
func hasRecipient(h *header.Header) bool {
	_, vs, _ := h.Lookup(header.To)
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
