package database

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Record documents are handled as raw JSON maps on the write path so that an
// update can shallow-merge the incoming fields over the stored ones: a key
// the caller omits keeps its stored value, while an explicit null
// overwrites it.

// newRecordID returns a millisecond-timestamp id, bumped past any id already
// taken in dir so back-to-back creates on the same clock tick cannot
// collide. Serialized callers only; concurrent writers would need a
// collision-resistant id instead.
func newRecordID(store *FileStore, dir string) string {
	id := time.Now().UnixMilli()
	for store.Exists(dir, strconv.FormatInt(id, 10)+jsonExt) {
		id++
	}
	return strconv.FormatInt(id, 10)
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// assignListIDs fills in an id for every entry of the named list field that
// arrived without one, e.g. stakeholders on a customer or notes on a
// project.
func assignListIDs(doc map[string]any, field string) {
	list, ok := doc[field].([]any)
	if !ok {
		return
	}
	for _, entry := range list {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if id, _ := item["id"].(string); id == "" {
			item["id"] = uuid.NewString()
		}
	}
}

// decodeRecord round-trips a raw document into the typed model.
func decodeRecord[T any](doc map[string]any) (*T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
