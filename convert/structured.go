package convert

import (
	"encoding/json"

	"github.com/hokaccha/go-prettyjson"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackToJSON re-encodes a msgpack document as JSON.
type MsgpackToJSON struct{}

func (MsgpackToJSON) Convert(value []byte) ([]byte, error) {
	var obj any
	if err := msgpack.Unmarshal(value, &obj); err != nil {
		return nil, conversionError("msgpack2json", err)
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, conversionError("msgpack2json", err)
	}
	return out, nil
}

// JSONToMsgpack re-encodes a JSON document as msgpack.
type JSONToMsgpack struct{}

func (JSONToMsgpack) Convert(value []byte) ([]byte, error) {
	var obj any
	if err := json.Unmarshal(value, &obj); err != nil {
		return nil, conversionError("json2msgpack", err)
	}
	out, err := msgpack.Marshal(obj)
	if err != nil {
		return nil, conversionError("json2msgpack", err)
	}
	return out, nil
}

// PrettyJSON indents a JSON document. Output is never colored.
type PrettyJSON struct {
	Indent int
}

func (p PrettyJSON) Convert(value []byte) ([]byte, error) {
	f := prettyjson.NewFormatter()
	f.DisabledColor = true
	if p.Indent > 0 {
		f.Indent = p.Indent
	}
	out, err := f.Format(value)
	if err != nil {
		return nil, conversionError("prettyjson", err)
	}
	return out, nil
}
