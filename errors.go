package chainedhashmap

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidCapacity - Custom error used as panic value when a table is created with a capacity it can't address
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the capacity is invalid
func (I InvalidCapacity) Error() string {
	if I.msg == "" {
		return "invalid capacity"
	}
	return I.msg
}

// InvalidHasher - Custom error used as panic value when a table is created without a key hasher
type InvalidHasher struct {
	msg string
}

// Error - Used to notify that no key hasher was given
func (I InvalidHasher) Error() string {
	if I.msg == "" {
		return "key hasher can not be nil"
	}
	return I.msg
}

// BucketOutOfRange - Custom error used as panic value when a key hasher returns a bucket number outside
// the table range
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket number is outside permitted range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number outside permitted range"
	}
	return B.msg
}
