package capi

// BoolToByte encodes a boolean for the boundary: 1 for true, 0 for false.
func BoolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ByteToBool decodes a boundary byte as a boolean; any non-zero value is true.
func ByteToBool(b byte) bool {
	return b != 0
}
