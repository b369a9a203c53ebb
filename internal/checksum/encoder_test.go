package checksum

import (
	"errors"
	"testing"
)

func TestParamStringSortedJoin(t *testing.T) {
	params := map[string]string{
		"ORDER_ID":   "O1",
		"MID":        "M1",
		"TXN_AMOUNT": "10.00",
	}
	got, err := ParamString(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 键名升序：MID, ORDER_ID, TXN_AMOUNT
	if got != "M1|O1|10.00" {
		t.Errorf("canonical string mismatch: %s", got)
	}
}

func TestParamStringDeterminism(t *testing.T) {
	params := map[string]string{
		"WEBSITE": "WEBSTAGING", "MID": "M1", "ORDER_ID": "O1",
		"CHANNEL_ID": "WEB", "CUST_ID": "42", "TXN_AMOUNT": "99.50",
	}
	first, err := ParamString(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ParamString(params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("canonical string not deterministic: %s vs %s", first, again)
		}
	}
}

func TestParamStringNullNormalized(t *testing.T) {
	got, err := ParamString(map[string]string{"A": "null", "B": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "|x" {
		t.Errorf("null value should normalize to empty: %q", got)
	}
}

func TestParamStringRejectsReservedContent(t *testing.T) {
	// 任一字段位置出现保留内容都必须拒绝
	base := map[string]string{"MID": "M1", "ORDER_ID": "O1", "TXN_AMOUNT": "10.00"}
	for field := range base {
		for _, bad := range []string{"a|b", "REFUND", "xxREFUNDxx", "|"} {
			params := map[string]string{}
			for k, v := range base {
				params[k] = v
			}
			params[field] = bad
			if _, err := ParamString(params); !errors.Is(err, ErrReservedContent) {
				t.Errorf("field %s value %q: want ErrReservedContent, got %v", field, bad, err)
			}
		}
	}
}
