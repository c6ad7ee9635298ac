package validators

import (
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

// DecodeJSONBody decodes the request body into dest. Any decode failure,
// including out-of-range numbers, is reported as malformed input.
func DecodeJSONBody(r *http.Request, dest any) error {
	if r.Body == nil {
		return pkgerrors.New(pkgerrors.CodeMalformed, "request body is required")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		if err == io.EOF {
			return pkgerrors.Wrap(pkgerrors.CodeMalformed, err, "request body is required")
		}
		return pkgerrors.Wrap(pkgerrors.CodeMalformed, err, "invalid request body")
	}
	return nil
}
