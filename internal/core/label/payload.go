// Package label contains the pure business logic for label payloads and
// file naming. Functions here have no side effects and no dependencies on
// rendering or persistence.
package label

import (
	"fmt"
	"strconv"
	"strings"
)

// Payload is the machine-readable content encoded into a label symbol.
type Payload struct {
	SerialNumber  string
	ServiceCycles int
	PartNumber    string
}

// Encode renders the payload in its wire form:
//
//	SN:<serialNumber>|SC:<serviceCycles>|PN:<partNumber>
//
// Field values are inserted verbatim; ServiceCycles is formatted base-10.
func (p Payload) Encode() string {
	return fmt.Sprintf("SN:%s|SC:%d|PN:%s", p.SerialNumber, p.ServiceCycles, p.PartNumber)
}

// ParsePayload decodes a wire-form payload back into its fields.
// Returns an error if the string does not have exactly three segments
// with the SN/SC/PN tags in order, or if the cycle count is not an integer.
func ParsePayload(s string) (Payload, error) {
	segments := strings.Split(s, "|")
	if len(segments) != 3 {
		return Payload{}, fmt.Errorf("invalid payload: expected 3 segments, got %d", len(segments))
	}

	serial, ok := strings.CutPrefix(segments[0], "SN:")
	if !ok {
		return Payload{}, fmt.Errorf("invalid payload: first segment must start with SN:")
	}

	cyclesStr, ok := strings.CutPrefix(segments[1], "SC:")
	if !ok {
		return Payload{}, fmt.Errorf("invalid payload: second segment must start with SC:")
	}
	cycles, err := strconv.Atoi(cyclesStr)
	if err != nil {
		return Payload{}, fmt.Errorf("invalid payload: service cycles %q is not an integer", cyclesStr)
	}

	part, ok := strings.CutPrefix(segments[2], "PN:")
	if !ok {
		return Payload{}, fmt.Errorf("invalid payload: third segment must start with PN:")
	}

	return Payload{
		SerialNumber:  serial,
		ServiceCycles: cycles,
		PartNumber:    part,
	}, nil
}
