package dspace

import (
	"fmt"
	"io"

	"github.com/antonholmquist/jason"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/metadata"
)

// DecodeMetadata reads a DSpace metadata array such as the body of
// /rest/items/{id}/metadata or a file saved from it.
func DecodeMetadata(r io.Reader) ([]metadata.Record, error) {
	v, err := jason.NewValueFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	return decodeMetadata(v)
}

// DecodeBitstreams reads a DSpace bitstream array.
func DecodeBitstreams(r io.Reader) ([]bitstream.Entry, error) {
	v, err := jason.NewValueFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing bitstreams: %w", err)
	}
	return decodeBitstreams(v)
}

func decodeMetadata(v *jason.Value) ([]metadata.Record, error) {
	objs, err := objectArray(v)
	if err != nil {
		return nil, fmt.Errorf("metadata is not an array of objects: %w", err)
	}

	records := make([]metadata.Record, 0, len(objs))
	for i, obj := range objs {
		key, err := obj.GetString("key")
		if err != nil {
			return nil, fmt.Errorf("metadata entry %d: key: %w", i, err)
		}
		value, err := optionalString(obj, "value")
		if err != nil {
			return nil, fmt.Errorf("metadata entry %d (%s): value: %w", i, key, err)
		}
		records = append(records, metadata.Record{Key: key, Value: value})
	}
	return records, nil
}

func decodeBitstreams(v *jason.Value) ([]bitstream.Entry, error) {
	objs, err := objectArray(v)
	if err != nil {
		return nil, fmt.Errorf("bitstreams is not an array of objects: %w", err)
	}

	entries := make([]bitstream.Entry, 0, len(objs))
	for i, obj := range objs {
		var e bitstream.Entry
		if e.Name, err = optionalString(obj, "name"); err != nil {
			return nil, fmt.Errorf("bitstream %d: name: %w", i, err)
		}
		if e.SizeBytes, err = obj.GetInt64("sizeBytes"); err != nil {
			return nil, fmt.Errorf("bitstream %d (%s): sizeBytes: %w", i, e.Name, err)
		}
		if e.BundleName, err = optionalString(obj, "bundleName"); err != nil {
			return nil, fmt.Errorf("bitstream %d (%s): bundleName: %w", i, e.Name, err)
		}
		if seq, err := obj.GetInt64("sequenceId"); err == nil {
			e.SequenceID = int(seq)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// objectArray returns the elements of an array value, each of which must be
// an object.
func objectArray(v *jason.Value) ([]*jason.Object, error) {
	vals, err := v.Array()
	if err != nil {
		return nil, err
	}
	objs := make([]*jason.Object, 0, len(vals))
	for i, e := range vals {
		obj, err := e.Object()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// optionalString returns "" for a missing or null field and an error for a
// field of any type other than string.
func optionalString(obj *jason.Object, key string) (string, error) {
	v, err := obj.GetValue(key)
	if err != nil {
		return "", nil
	}
	if v.Null() == nil {
		return "", nil
	}
	return v.String()
}
