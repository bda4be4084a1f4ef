package components

// Attack target patterns, relative to the mover's destination and heading
const (
	TargetForwardSingle = "forward-single"
	TargetLeftSingle    = "left-single"
	TargetRightSingle   = "right-single"
)

// AttackEffect is one damage pattern
type AttackEffect struct {
	TargetType string
	Strength   int
}

// AttackSetComponent binds any number of effects to each face id
type AttackSetComponent struct {
	Effects map[string][]AttackEffect
}

// NewAttackSetComponent returns an empty attack set
func NewAttackSetComponent() *AttackSetComponent {
	return &AttackSetComponent{Effects: make(map[string][]AttackEffect)}
}

// Bind appends effects for a face id
func (a *AttackSetComponent) Bind(faceID string, effects ...AttackEffect) *AttackSetComponent {
	a.Effects[faceID] = append(a.Effects[faceID], effects...)
	return a
}

// AttackSideComponent binds a single effect to a single face id
type AttackSideComponent struct {
	FaceID string
	Effect AttackEffect
}
