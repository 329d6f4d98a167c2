package astview

// Ast is the read-only contract an already-parsed syntax tree has to
// satisfy to be explorable. Implementations live with the parser (see
// the treesit package); the engine never mutates them and never
// outlives a projection built from them.
type Ast interface {
	// Kind is the node's type name, used as the display label.
	Kind() string
	// Fields returns the node's fields in declaration order.
	Fields() []Field
	// Span returns the node's source extent, if it carries one.
	Span() (Span, bool)
	// DefName returns the defined name for definition-like kinds
	// (functions, classes and friends), if the node has one.
	DefName() (string, bool)
}

// Field is a named slot on an Ast node.
type Field struct {
	Name  string
	Value Value
}

// Value is the sum of things a field can hold: a child node, an
// ordered sequence of values, or a scalar leaf.
type Value interface {
	isValue()
}

// NodeValue holds a single child Ast node.
type NodeValue struct {
	Node Ast
}

// SeqValue holds an ordered, possibly empty, sequence of values.
type SeqValue struct {
	Items []Value
}

// ScalarValue holds the textual rendering of a scalar leaf (a string,
// number, boolean or absence marker).
type ScalarValue struct {
	Text string
}

func (NodeValue) isValue()   {}
func (SeqValue) isValue()    {}
func (ScalarValue) isValue() {}
