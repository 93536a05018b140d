package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// NullableID - ссылка на справочную запись в теле запроса.
// Различает три состояния: поле отсутствует (Present=false),
// поле очищено ("" или null -> ID=nil) и установленный ID.
// Клиенты исторически шлют ID и числом, и строкой.
type NullableID struct {
	Present bool
	ID      *uint64
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Present = true
	n.ID = nil

	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("неверный формат ID %q: %w", s, err)
	}
	n.ID = &v
	return nil
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.ID == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(*n.ID, 10)), nil
}

// FlexInt - количество в теле запроса: принимает и 3, и "3".
type FlexInt struct {
	Present bool
	Value   int
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	f.Present = true

	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		f.Present = false
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("неверный формат количества %q: %w", s, err)
	}
	f.Value = v
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(f.Value)), nil
}
