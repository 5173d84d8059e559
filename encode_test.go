package ticker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func TestDecodeUniverse(t *testing.T) {
	in := `{"symbol":"TEA","type":"Common","lastDividend":0,"parValue":100}

{"symbol":"GIN","type":"Preferred","lastDividend":8,"fixedDividend":0.02,"parValue":100}
`
	specs, err := DecodeUniverse("universe.jsonl", strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeUniverse() unexpected error: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(specs))
	}
	if specs[0].Symbol != "TEA" || specs[0].Type != Common {
		t.Errorf("specs[0] = %+v, want TEA Common", specs[0])
	}
	gin := specs[1]
	if gin.Type != Preferred || !gin.FixedDividend.Equal(decimal.New(2, -2)) || !gin.ParValue.Equal(M(100)) {
		t.Errorf("specs[1] = %+v, want GIN Preferred 0.02 100", gin)
	}
}

func TestDecodeUniverse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "broken json", in: `{"symbol":`},
		{name: "unknown stock type", in: `{"symbol":"TEA","type":"Exotic","parValue":100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUniverse("universe.jsonl", strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("DecodeUniverse() expected an error, got nil")
			}
			// errors carry the filename and line for the user to fix the file
			if !strings.Contains(err.Error(), "universe.jsonl:1") {
				t.Errorf("error %q does not locate the faulty line", err)
			}
		})
	}
}

func TestEncodeMarketReport(t *testing.T) {
	m, err := NewUniverse(DefaultUniverse())
	if err != nil {
		t.Fatal(err)
	}
	ale, _ := m.Get("ALE")
	ale.RecordTrade(mustTrade(t, time.Minute, 10, Buy, 100))
	gin, _ := m.Get("GIN")
	gin.RecordTrade(mustTrade(t, 2*time.Minute, 5, Sell, 100))

	report, err := NewMarketReport(m, tradingDay)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := report.EncodeMarketReport(&buf); err != nil {
		t.Fatalf("EncodeMarketReport() unexpected error: %v", err)
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		t.Fatalf("exported report is not valid json: %v", err)
	}

	// decimals are serialized as quoted strings, ratios as plain numbers
	tests := []struct {
		path string
		want any
	}{
		{path: "$.asOf", want: tradingDay.Format(time.RFC3339)},
		{path: "$.rows[0].symbol", want: "TEA"},
		{path: "$.rows[0].hasTrades", want: false},
		{path: "$.rows[2].symbol", want: "ALE"},
		{path: "$.rows[2].type", want: "Common"},
		{path: "$.rows[2].lastDividend", want: "23"},
		{path: "$.rows[2].hasTrades", want: true},
		{path: "$.rows[2].price", want: "100"},
		{path: "$.rows[2].dividendYield", want: "0.23"},
		{path: "$.rows[3].symbol", want: "GIN"},
		{path: "$.rows[3].fixedDividend", want: 0.02},
		{path: "$.shareIndex", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := jsonpath.Get(tt.path, jobj)
			if err != nil {
				t.Fatalf("jsonpath %q: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("jsonpath %q = %v (%T), want %v (%T)", tt.path, got, got, tt.want, tt.want)
			}
		})
	}

	// placeholder rows must not leak metric fields
	if _, err := jsonpath.Get("$.rows[0].dividendYield", jobj); err == nil {
		t.Error("rows[0].dividendYield is present on a stock with no recent trades")
	}
	if _, err := jsonpath.Get("$.rows[2].fixedDividend", jobj); err == nil {
		t.Error("rows[2].fixedDividend is present on a Common stock")
	}
}

func TestTradeMarshalJSON(t *testing.T) {
	tr, err := NewTrade(time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC), Q(100), Buy, M(150))
	if err != nil {
		t.Fatal(err)
	}
	got, err := json.Marshal(tr)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"time":"2025-06-02T14:30:00Z","quantity":"100","direction":"BUY","price":"150"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
