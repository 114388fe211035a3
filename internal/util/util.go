package util

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

func JSONMarshalIgnoreErr(v any) []byte {
	if v == nil {
		return []byte("null")
	}

	bs, err := json.Marshal(v)
	if err != nil {
		log.Err(err).Msg("json marshal error")
		return []byte("{}")
	}

	return bs
}

// CloseWithErr closes c and joins its error into *err, so a deferred close
// failure is not lost when the function otherwise succeeded.
func CloseWithErr(c io.Closer, err *error) {
	if cErr := c.Close(); cErr != nil {
		*err = errors.Join(*err, cErr)
	}
}
