package sqlite

import "encoding/json"

// JSONL file names in the data directory.
const (
	nodeTypesJSONL   = "node_types.jsonl"
	namespacesJSONL  = "namespaces.jsonl"
	descriptorsJSONL = "descriptors.jsonl"
)

// jsonlFiles lists every JSONL file the backend owns.
var jsonlFiles = []string{
	nodeTypesJSONL,
	namespacesJSONL,
	descriptorsJSONL,
}

// Node types and namespaces are stored in node_types.jsonl and
// namespaces.jsonl using the json tags on types.NodeType and types.Namespace.
// On-parent-version actions are stored as their numeric code.

// descriptorJSON represents a descriptor in descriptors.jsonl.
type descriptorJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// encodeRecords marshals each value into one JSONL record.
func encodeRecords[T any](values []T) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, nil
}

// decodeRecords unmarshals JSONL records, skipping any that do not decode.
func decodeRecords[T any](records []json.RawMessage) []T {
	values := make([]T, 0, len(records))
	for _, rec := range records {
		var v T
		if err := json.Unmarshal(rec, &v); err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// encodeList stores a string list column. A nil list becomes JSON null so
// that absence survives a round trip through the database.
func encodeList(list []string) (string, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(column string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(column), &list); err != nil {
		return nil, err
	}
	return list, nil
}
