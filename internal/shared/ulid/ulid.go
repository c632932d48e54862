package ulid

import (
	"github.com/oklog/ulid/v2"
)

const batchIDPrefix = "batch_"

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewBatchID generates an ingest batch ID; ULIDs sort by creation time, so batch IDs do too.
var NewBatchID = func() string {
	return batchIDPrefix + NewULID()
}
