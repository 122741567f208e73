// Package filter holds the per-entity whitelist of query parameters that the
// find and find_all endpoints accept, together with the type each one is
// parsed as before it reaches the database.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/sales-engine-api/pkg/apperror"
	"github.com/sangkips/sales-engine-api/pkg/money"
)

// Kind is the static type of a filter field
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindMoney
	KindTime
)

// Field maps a query parameter to a column
type Field struct {
	Param  string
	Column string
	Kind   Kind
}

// Set is the whitelist for one entity
type Set struct {
	Table  string
	Fields []Field
}

// Condition is a parsed equality predicate on a column
type Condition struct {
	Column string
	Value  any
}

// timeLayouts are tried in order when parsing time parameters
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func field(param string, kind Kind) Field {
	return Field{Param: param, Column: param, Kind: kind}
}

func timestamps() []Field {
	return []Field{field("created_at", KindTime), field("updated_at", KindTime)}
}

// Whitelists per entity
var (
	Merchants = Set{
		Table: "merchants",
		Fields: append([]Field{
			field("id", KindInt),
			field("name", KindString),
		}, timestamps()...),
	}

	Customers = Set{
		Table: "customers",
		Fields: append([]Field{
			field("id", KindInt),
			field("first_name", KindString),
			field("last_name", KindString),
		}, timestamps()...),
	}

	Items = Set{
		Table: "items",
		Fields: append([]Field{
			field("id", KindInt),
			field("name", KindString),
			field("description", KindString),
			field("unit_price", KindMoney),
			field("merchant_id", KindInt),
		}, timestamps()...),
	}

	Invoices = Set{
		Table: "invoices",
		Fields: append([]Field{
			field("id", KindInt),
			field("status", KindString),
			field("customer_id", KindInt),
			field("merchant_id", KindInt),
		}, timestamps()...),
	}

	InvoiceItems = Set{
		Table: "invoice_items",
		Fields: append([]Field{
			field("id", KindInt),
			field("item_id", KindInt),
			field("invoice_id", KindInt),
			field("quantity", KindInt),
			field("unit_price", KindMoney),
		}, timestamps()...),
	}

	Transactions = Set{
		Table: "transactions",
		Fields: append([]Field{
			field("id", KindInt),
			field("invoice_id", KindInt),
			field("credit_card_number", KindString),
			field("credit_card_expiration_date", KindString),
			field("result", KindString),
		}, timestamps()...),
	}
)

// Parse turns query parameters into conditions. Parameters outside the
// whitelist are ignored. Every value that fails to parse is reported in a
// single 400 AppError. Only the first value of a repeated parameter is used.
// Conditions are returned in whitelist order.
func (s Set) Parse(values url.Values) ([]Condition, error) {
	var (
		conds     []Condition
		fieldErrs []apperror.FieldError
	)
	for _, f := range s.Fields {
		raw, ok := values[f.Param]
		if !ok || len(raw) == 0 {
			continue
		}
		v, err := ParseValue(f.Kind, raw[0])
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: f.Param, Message: err.Error()})
			continue
		}
		conds = append(conds, Condition{Column: s.Table + "." + f.Column, Value: v})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewInvalidParamsError(fieldErrs)
	}
	return conds, nil
}

// ParseValue parses a raw parameter value for the given kind
func ParseValue(kind Kind, raw string) (any, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, errInvalid("an integer")
		}
		return n, nil
	case KindMoney:
		c, err := money.ParseDollars(raw)
		if err != nil {
			return nil, errInvalid("a decimal amount")
		}
		return int64(c), nil
	case KindTime:
		t, err := ParseTime(raw)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return raw, nil
	}
}

// ParseTime accepts RFC 3339 and the "2012-03-27 14:54:09 UTC" form used by the CSV fixtures
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalid("a timestamp")
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errInvalid("a date (YYYY-MM-DD)")
	}
	return t, nil
}

type parseError string

func (e parseError) Error() string { return string(e) }

func errInvalid(what string) error {
	return parseError("must be " + what)
}
