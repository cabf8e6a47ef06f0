package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// OptionalUint64 distinguishes a field that was absent from the payload,
// present as JSON null, and present with a value. The distinction matters
// for the referral merge rule on signup, where "not sent" and "sent as
// null" both keep the stored value while only a real id overwrites it.
type OptionalUint64 struct {
	Set   bool
	Valid bool
	Value uint64
}

// UnmarshalJSON accepts numbers and numeric strings; legacy clients send
// both. A zero value is kept as present-but-null since the historical API
// coalesced falsy values away.
func (o *OptionalUint64) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Valid = false
	o.Value = 0

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", string(data))
	}
	if v == 0 {
		return nil
	}

	o.Value = v
	o.Valid = true
	return nil
}

// Pick applies the merge rule: a present non-null value wins, anything
// else keeps what is already stored.
func (o OptionalUint64) Pick(current *uint64) *uint64 {
	if o.Set && o.Valid {
		v := o.Value
		return &v
	}
	return current
}

// Ptr returns the value as a nullable pointer for inserts.
func (o OptionalUint64) Ptr() *uint64 {
	if o.Set && o.Valid {
		v := o.Value
		return &v
	}
	return nil
}
