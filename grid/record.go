package grid

// Field is one (header, value) pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is one data row keyed by header label. Fields keep header order; a
// lookup index backs key access. Duplicate header labels collapse to a single
// field at the first occurrence's position, last value winning.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord returns an empty record sized for n fields.
func NewRecord(n int) *Record {
	return &Record{
		fields: make([]Field, 0, n),
		index:  make(map[string]int, n),
	}
}

// Set inserts or overwrites the value for key, preserving insertion order.
func (r *Record) Set(key string, v Value) {
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: v})
}

// Get returns the value for key and whether the key is present.
func (r *Record) Get(key string) (Value, bool) {
	if i, ok := r.index[key]; ok {
		return r.fields[i].Value, true
	}
	return Value{}, false
}

// Keys returns the record's keys in field order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Key
	}
	return out
}

// Fields returns the ordered (key, value) pairs. The slice is shared; callers
// must not modify it.
func (r *Record) Fields() []Field { return r.fields }

// Len returns the number of distinct keys.
func (r *Record) Len() int { return len(r.fields) }
