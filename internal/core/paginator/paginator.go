// Package paginator slices ordered sequences into fixed-size page windows.
//
// Out-of-range page numbers never fail: anything below the first page resolves to
// the first page, anything past the last page resolves to the last page, and a
// missing or non-numeric page number means page 1.
package paginator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Paginator struct {
	Count   int
	PerPage int
}

func New(count, perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage}
}

// NumPages is ceil(Count/PerPage); an empty sequence still has one (empty) page.
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// GetPage resolves a raw page parameter, as found in a query string.
func (p Paginator) GetPage(raw string) Page {
	return p.Page(ParseNumber(raw))
}

// ParseNumber reads a page parameter. Non-numeric input is page 1; integers
// too large for int saturate so that Page clamps them like any other
// out-of-range number.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil {
		return n
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		if strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return 1
}

func (p Paginator) Page(number int) Page {
	last := p.NumPages()
	switch {
	case number < 1:
		number = 1
	case number > last:
		number = last
	}

	offset := (number - 1) * p.PerPage
	limit := p.PerPage
	if offset+limit > p.Count {
		limit = p.Count - offset
	}
	return Page{
		Number:   number,
		NumPages: last,
		Count:    p.Count,
		PerPage:  p.PerPage,
		Offset:   offset,
		Limit:    limit,
	}
}

// Page is one resolved window over a sequence of Count items.
type Page struct {
	Number   int
	NumPages int
	Count    int
	PerPage  int
	Offset   int
	Limit    int
}

func (p Page) HasNext() bool     { return p.Number < p.NumPages }
func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}
func (p Page) NextNumber() int     { return p.Number + 1 }
func (p Page) PreviousNumber() int { return p.Number - 1 }

// Window is a page together with the items it covers.
type Window[T any] struct {
	Items []T
	Page  Page
}

// Paginate cuts an in-memory sequence. The returned items share the backing array
// of items and keep its order.
func Paginate[T any](items []T, raw string, perPage int) Window[T] {
	page := New(len(items), perPage).GetPage(raw)
	return Window[T]{
		Items: items[page.Offset : page.Offset+page.Limit],
		Page:  page,
	}
}
