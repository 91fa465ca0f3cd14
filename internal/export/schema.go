package export

import _ "embed"

// Schema is the JSON schema of the document written by WriteJSON.
//
//go:embed schema/timeline.schema.json
var Schema string
