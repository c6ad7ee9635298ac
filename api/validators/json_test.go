package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

type payload struct {
	Mint     string `json:"mint"`
	Decimals uint8  `json:"decimals"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/token/create", strings.NewReader(`{"mint":"abc","decimals":6,"extra":true}`))

	var dest payload
	if err := DecodeJSONBody(req, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Mint != "abc" || dest.Decimals != 6 {
		t.Fatalf("unexpected decode result %+v", dest)
	}
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"syntax":         `{"mint":`,
		"wrong type":     `{"mint":1}`,
		"decimals range": `{"mint":"abc","decimals":300}`,
		"negative":       `{"decimals":-1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/token/create", strings.NewReader(body))
			var dest payload
			err := DecodeJSONBody(req, &dest)
			typed := pkgerrors.As(err)
			if typed == nil {
				t.Fatalf("expected typed error, got %v", err)
			}
			if typed.Code() != pkgerrors.CodeMalformed {
				t.Fatalf("expected malformed code, got %s", typed.Code())
			}
		})
	}
}
