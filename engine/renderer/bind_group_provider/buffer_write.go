package bind_group_provider

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset. Offset plus Data length must fit inside
// the target buffer; partial writes (such as rewriting only a time scalar) are legal and
// leave the rest of the buffer untouched.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
