package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jobsboard/web/pkg/apiclient"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type decisionOutput struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// apiFailure prefers the message the API sent over the transport error.
func apiFailure(what string, err error) error {
	return fmt.Errorf("%s: %s", what, apiclient.MessageOr(err, err.Error()))
}
