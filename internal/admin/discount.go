package admin

import (
	"errors"
	"strconv"
)

var (
	ErrMissingCode       = errors.New("discount code is required")
	ErrInvalidType       = errors.New("invalid discount type")
	ErrInvalidValue      = errors.New("discount value must be a positive number")
	ErrInvalidMaxAmount  = errors.New("max discount amount must be a number")
	ErrInvalidUsageLimit = errors.New("usage limit must be a whole number")
)

// DiscountForm holds discount fields as entered, numbers included, so blank
// optional fields can be told apart from explicit zeroes.
type DiscountForm struct {
	Code              string
	Description       string
	DiscountType      DiscountType
	DiscountValue     string
	MinOrderAmount    string
	MaxDiscountAmount string
	UsageLimit        string
	ValidFrom         string
	ValidUntil        string
	IsActive          *bool
}

type discountPayload struct {
	Code              string       `json:"code"`
	Description       string       `json:"description"`
	DiscountType      DiscountType `json:"discount_type"`
	DiscountValue     float64      `json:"discount_value"`
	MinOrderAmount    float64      `json:"min_order_amount"`
	MaxDiscountAmount *float64     `json:"max_discount_amount,omitempty"`
	UsageLimit        *int         `json:"usage_limit,omitempty"`
	ValidFrom         string       `json:"valid_from"`
	ValidUntil        string       `json:"valid_until"`
	IsActive          bool         `json:"is_active"`
}

// Payload normalizes the form into the wire shape. A blank minimum order
// amount becomes zero, blank caps are omitted entirely, and IsActive
// defaults to true when unset.
func (f DiscountForm) Payload() (*discountPayload, error) {
	if f.Code == "" {
		return nil, ErrMissingCode
	}
	if !f.DiscountType.Valid() {
		return nil, ErrInvalidType
	}

	value, err := strconv.ParseFloat(f.DiscountValue, 64)
	if err != nil || value <= 0 {
		return nil, ErrInvalidValue
	}

	p := &discountPayload{
		Code:          f.Code,
		Description:   f.Description,
		DiscountType:  f.DiscountType,
		DiscountValue: value,
		ValidFrom:     f.ValidFrom,
		ValidUntil:    f.ValidUntil,
		IsActive:      true,
	}
	if f.IsActive != nil {
		p.IsActive = *f.IsActive
	}

	if f.MinOrderAmount != "" {
		min, err := strconv.ParseFloat(f.MinOrderAmount, 64)
		if err != nil {
			min = 0
		}
		p.MinOrderAmount = min
	}
	if f.MaxDiscountAmount != "" {
		max, err := strconv.ParseFloat(f.MaxDiscountAmount, 64)
		if err != nil {
			return nil, ErrInvalidMaxAmount
		}
		p.MaxDiscountAmount = &max
	}
	if f.UsageLimit != "" {
		limit, err := strconv.Atoi(f.UsageLimit)
		if err != nil {
			return nil, ErrInvalidUsageLimit
		}
		p.UsageLimit = &limit
	}

	return p, nil
}
