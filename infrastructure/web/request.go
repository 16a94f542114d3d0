package web

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// maxBodyBytes caps request bodies read by Decode.
const maxBodyBytes = 1 << 20

// multipartMemory is the in-memory budget for multipart form parsing.
const multipartMemory = 4 << 20

// ParamInt64 returns the named path value parsed as a base 10 int64.
func ParamInt64(r *http.Request, key string) (int64, error) {
	v := r.PathValue(key)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path param %s: %w", key, err)
	}
	return id, nil
}

// Decoder represents data that can decode itself.
type Decoder interface {
	Decode(data []byte) error
}

type validator interface {
	Validate() error
}

// Decode reads the request body into v. JSON is the default; url-encoded
// and multipart forms are converted to a JSON object of string values
// first. An empty body decodes as an empty object. If v implements
// Decoder it decodes itself, and if it implements Validate that runs last.
func Decode(r *http.Request, v any) error {
	data, err := readBody(r)
	if err != nil {
		return err
	}

	if decoder, ok := v.(Decoder); ok {
		if err := decoder.Decode(data); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	} else if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	if val, ok := v.(validator); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("validation: %w", err)
		}
	}

	return nil
}

func readBody(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return formToJSON(r.PostForm)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		return formToJSON(r.MultipartForm.Value)
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("unable to read request body: %w", err)
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

// formToJSON keeps the first value of every form key.
func formToJSON(values map[string][]string) ([]byte, error) {
	obj := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			obj[k] = vs[0]
		}
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return data, nil
}
