package dto

import (
	"encoding/json"
	"errors"
)

// Amount is a money or credit value in a request. Clients may send it as a JSON number
// or as a decimal string; the use cases parse and validate the text.
type Amount string

// UnmarshalJSON accepts "10.50" and 10.50 alike
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a number or a decimal string")
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string {
	return string(a)
}
