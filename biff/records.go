package biff

// ReadRecords splits a stream into its records without interpreting them.
// Unlike DecodeFields it does not stop at ENDB: end markers, including those
// of nested sub-streams, are returned as records with an empty payload, so
// that WriteRecords reproduces the input exactly.
func ReadRecords(data []byte) ([]Record, error) {
	r := NewReader(data)
	return readRecords(r)
}

func readRecords(r *Reader) ([]Record, error) {
	r.all = true
	var records []Record
	for r.Next() {
		tag := r.Tag()
		b, err := r.Rest()
		if err != nil {
			return records, err
		}
		records = append(records, Record{Tag: tag, Data: b})
	}
	return records, r.Err()
}

// ReadRemainingRecords is like ReadRecords, but starts at the cursor of r.
// It is used for streams with a header in front of the first record.
func ReadRemainingRecords(r *Reader) ([]Record, error) {
	return readRecords(r)
}

// WriteRecords writes records in order, with no ENDB added.
func WriteRecords(w *Writer, records []Record) {
	for _, rec := range records {
		w.Record(rec.Tag, rec.Data)
	}
}

// FindRecords returns the records with the given tag.
func FindRecords(records []Record, tag string) []Record {
	var found []Record
	for _, rec := range records {
		if rec.Tag == tag {
			found = append(found, rec)
		}
	}
	return found
}
