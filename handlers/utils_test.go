package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	setFlash(c, "success", "Income details saved.")

	var value string
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == FlashCookie {
			value = cookie.Value
		}
	}
	if value == "" {
		t.Fatal("flash cookie not set")
	}

	flash, err := DecodeFlash(value)
	if err != nil {
		t.Fatalf("DecodeFlash: %v", err)
	}
	if flash.Level != "success" || flash.Message != "Income details saved." {
		t.Errorf("flash = %+v", flash)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.34", "12.34", false},
		{" 100 ", "100", false},
		{"0", "0", false},
		{"", "", true},
		{"abc", "", true},
		{"-5.00", "", true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("parseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-03-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if date.Year() != 2024 || date.Month() != 3 || date.Day() != 15 {
		t.Errorf("parseDate = %s", date)
	}

	if _, err := parseDate("15/03/2024"); err == nil {
		t.Error("expected error for wrong date layout")
	}
	if _, err := parseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}
