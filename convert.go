package valueptr

// Convert clones src's value with src's cloner, converts the clone with conv
// and returns a Ptr owning the result under cloner c and deleter d.
//
// conv takes ownership of the clone; it typically returns the same
// allocation viewed as another type, or a new value embedding it. If conv
// returns nil the clone is destroyed with src's deleter and ErrConversion is
// returned. On any failure src is unchanged.
//
// Convert panics with a *ConfigError if c or d is nil.
func Convert[T, U any, C Cloner[T], D Deleter[T], CU Cloner[U], DU Deleter[U]](
	src *Ptr[U, CU, DU], conv func(*U) *T, c C, d D,
) (*Ptr[T, C, D], error) {
	mustCapability[T](c, "cloner")
	mustCapability[T](d, "deleter")

	target, err := convertClone(src, conv)
	if err != nil {
		return nil, err
	}
	return &Ptr[T, C, D]{target: target, cloner: c, deleter: d}, nil
}

// AssignConverted replaces dst's value with conv applied to a clone of src's
// value. dst keeps its own policies, and its old value is destroyed only
// after the clone and conversion succeeded.
func AssignConverted[T, U any, C Cloner[T], D Deleter[T], CU Cloner[U], DU Deleter[U]](
	dst *Ptr[T, C, D], src *Ptr[U, CU, DU], conv func(*U) *T,
) error {
	target, err := convertClone(src, conv)
	if err != nil {
		return err
	}
	dst.Reset(target)
	return nil
}

func convertClone[T, U any, CU Cloner[U], DU Deleter[U]](src *Ptr[U, CU, DU], conv func(*U) *T) (*T, error) {
	clone, err := src.Clone()
	if err != nil || clone == nil {
		return nil, err
	}
	out := conv(clone)
	if out == nil {
		src.destroy(clone)
		return nil, newCloneError(ErrConversion, typeNameOf[U](), nil)
	}
	return out, nil
}
