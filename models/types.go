package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// StringList is an ordered list of free-text strings stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", value)
}

// PricingOption is one tier of a product's pricing.
type PricingOption struct {
	Tier               constants.Tier `json:"tier"`
	Price              float64        `json:"price"`
	DiscountPercentage float64        `json:"discountPercentage"`
}

// PricingList holds all pricing tiers of a product, stored as a JSON column.
type PricingList []PricingOption

func (l PricingList) Value() (driver.Value, error) {
	if l == nil {
		l = PricingList{}
	}
	return json.Marshal(l)
}

func (l *PricingList) Scan(value interface{}) error {
	if value == nil {
		*l = PricingList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into PricingList", value)
}
