package operators

// AttrInt is the AttributeProto type tag of an INT attribute.
const AttrInt = 2

// Node represents one operator invocation in a graph.
type Node struct {
	Name       string      // Node name (optional)
	OpType     string      // Operation type (e.g., "Find", "Identity")
	Inputs     []string    // Input tensor names
	Outputs    []string    // Output tensor names
	Attributes []Attribute // Operation attributes
	Domain     string      // Custom domain (empty for default)
}

// Attribute represents a node attribute.
type Attribute struct {
	Name string // Attribute name
	Type int32  // Attribute type
	I    int64  // INT value
}

// IntAttr builds an INT attribute.
func IntAttr(name string, v int64) Attribute {
	return Attribute{Name: name, Type: AttrInt, I: v}
}

// GetAttrInt returns an integer attribute or default value.
// Attributes with the right name but a non-INT type are ignored.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name && node.Attributes[i].Type == AttrInt {
			return node.Attributes[i].I
		}
	}
	return defaultVal
}
