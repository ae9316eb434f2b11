package document

import "github.com/alexisbeaulieu97/scalekit/internal/color"

// Type is the discriminator carried by every command.
type Type string

const (
	TypeCreatePalette                Type = "CREATE_PALETTE"
	TypeDuplicatePalette             Type = "DUPLICATE_PALETTE"
	TypeDeletePalette                Type = "DELETE_PALETTE"
	TypeChangePaletteName            Type = "CHANGE_PALETTE_NAME"
	TypeChangePaletteBackgroundColor Type = "CHANGE_PALETTE_BACKGROUND_COLOR"
	TypeCreateScale                  Type = "CREATE_SCALE"
	TypeDuplicateScale               Type = "DUPLICATE_SCALE"
	TypeDeleteScale                  Type = "DELETE_SCALE"
	TypeChangeScaleName              Type = "CHANGE_SCALE_NAME"
	TypeMoveScale                    Type = "MOVE_SCALE"
	TypeCreateColor                  Type = "CREATE_COLOR"
	TypePopColor                     Type = "POP_COLOR"
	TypeDeleteColor                  Type = "DELETE_COLOR"
	TypeChangeColorValue             Type = "CHANGE_COLOR_VALUE"
	TypeCreateCurveFromScale         Type = "CREATE_CURVE_FROM_SCALE"
	TypeChangeScaleCurve             Type = "CHANGE_SCALE_CURVE"
	TypeChangeCurveName              Type = "CHANGE_CURVE_NAME"
	TypeChangeCurveValue             Type = "CHANGE_CURVE_VALUE"
	TypeDeleteCurve                  Type = "DELETE_CURVE"
	TypeApplyEasingFunction          Type = "APPLY_EASING_FUNCTION"
	TypeCreateNamingSchemeFromScale  Type = "CREATE_NAMING_SCHEME_FROM_SCALE"
	TypeChangeNamingSchemeName       Type = "CHANGE_NAMING_SCHEME_NAME"
	TypeChangeNameInNamingScheme     Type = "CHANGE_NAME_IN_NAMING_SCHEME"
	TypeDeleteNamingScheme           Type = "DELETE_NAMING_SCHEME"
	TypeChangeScaleNamingScheme      Type = "CHANGE_SCALE_NAMING_SCHEME"
	TypeUndo                         Type = "UNDO"
	TypeRedo                         Type = "REDO"
)

// Command is a tagged edit request issued by the UI layer.
type Command interface {
	Type() Type
}

// Immediate reports whether cmd bypasses the debounced, checkpointed path.
// Palette creation, duplication and deletion apply at once and never become
// undo steps.
func Immediate(cmd Command) bool {
	switch cmd.Type() {
	case TypeCreatePalette, TypeDuplicatePalette, TypeDeletePalette:
		return true
	default:
		return false
	}
}

// IsHistory reports whether cmd is UNDO or REDO.
func IsHistory(cmd Command) bool {
	t := cmd.Type()
	return t == TypeUndo || t == TypeRedo
}

// CreatePalette adds a palette seeded with example scales. An empty Name becomes "Untitled".
type CreatePalette struct {
	Name string
}

// DuplicatePalette deep-copies a palette under fresh ids.
type DuplicatePalette struct {
	PaletteID string
}

// DeletePalette removes a palette with its scales, curves and naming schemes.
type DeletePalette struct {
	PaletteID string
}

// ChangePaletteName renames a palette.
type ChangePaletteName struct {
	PaletteID string
	Name      string
}

// ChangePaletteBackgroundColor sets the color the palette is previewed on.
type ChangePaletteBackgroundColor struct {
	PaletteID       string
	BackgroundColor string
}

// CreateScale appends a one-color scale seeded with a random named color.
type CreateScale struct {
	PaletteID string
}

// DuplicateScale copies a scale and places the copy right after it.
type DuplicateScale struct {
	PaletteID string
	ScaleID   string
}

// DeleteScale removes a scale from its palette.
type DeleteScale struct {
	PaletteID string
	ScaleID   string
}

// ChangeScaleName renames a scale.
type ChangeScaleName struct {
	PaletteID string
	ScaleID   string
	Name      string
}

// MoveScale places a scale at ToIndex in the palette's display order.
type MoveScale struct {
	PaletteID string
	ScaleID   string
	ToIndex   int
}

// CreateColor inserts a color after AfterIndex, or at the end when nil.
type CreateColor struct {
	PaletteID  string
	ScaleID    string
	AfterIndex *int
}

// PopColor removes the last color of a scale.
type PopColor struct {
	PaletteID string
	ScaleID   string
}

// DeleteColor removes the color at Index.
type DeleteColor struct {
	PaletteID string
	ScaleID   string
	Index     int
}

// ChangeColorValue sets the stored value of one channel. For a curve-driven
// channel the stored value is the offset.
type ChangeColorValue struct {
	PaletteID string
	ScaleID   string
	Index     int
	Channel   color.Channel
	Value     float64
}

// CreateCurveFromScale captures the effective values of Channel as a new curve and attaches it.
type CreateCurveFromScale struct {
	PaletteID string
	ScaleID   string
	Channel   color.Channel
}

// ChangeScaleCurve drives Channel with CurveID, or detaches it when CurveID is empty.
type ChangeScaleCurve struct {
	PaletteID string
	ScaleID   string
	Channel   color.Channel
	CurveID   string
}

// ChangeCurveName renames a curve.
type ChangeCurveName struct {
	PaletteID string
	CurveID   string
	Name      string
}

// ChangeCurveValue sets the curve value at Index.
type ChangeCurveValue struct {
	PaletteID string
	CurveID   string
	Index     int
	Value     float64
}

// DeleteCurve detaches a curve from every scale using it, then removes it.
type DeleteCurve struct {
	PaletteID string
	CurveID   string
}

// ApplyEasingFunction rewrites the interior values of a curve with the named easing.
type ApplyEasingFunction struct {
	PaletteID string
	CurveID   string
	Easing    string
}

// CreateNamingSchemeFromScale labels a scale's positions and attaches the new scheme.
type CreateNamingSchemeFromScale struct {
	PaletteID string
	ScaleID   string
}

// ChangeNamingSchemeName renames a naming scheme.
type ChangeNamingSchemeName struct {
	PaletteID      string
	NamingSchemeID string
	Name           string
}

// ChangeNameInNamingScheme sets the label at Index.
type ChangeNameInNamingScheme struct {
	PaletteID      string
	NamingSchemeID string
	Index          int
	Value          string
}

// DeleteNamingScheme removes a scheme and releases the scales using it.
type DeleteNamingScheme struct {
	PaletteID      string
	NamingSchemeID string
}

// ChangeScaleNamingScheme attaches NamingSchemeID to a scale, or detaches
// the current one when empty.
type ChangeScaleNamingScheme struct {
	PaletteID      string
	ScaleID        string
	NamingSchemeID string
}

// Undo restores the most recent checkpoint.
type Undo struct{}

// Redo re-applies the most recently undone checkpoint.
type Redo struct{}

func (CreatePalette) Type() Type                { return TypeCreatePalette }
func (DuplicatePalette) Type() Type             { return TypeDuplicatePalette }
func (DeletePalette) Type() Type                { return TypeDeletePalette }
func (ChangePaletteName) Type() Type            { return TypeChangePaletteName }
func (ChangePaletteBackgroundColor) Type() Type { return TypeChangePaletteBackgroundColor }
func (CreateScale) Type() Type                  { return TypeCreateScale }
func (DuplicateScale) Type() Type               { return TypeDuplicateScale }
func (DeleteScale) Type() Type                  { return TypeDeleteScale }
func (ChangeScaleName) Type() Type              { return TypeChangeScaleName }
func (MoveScale) Type() Type                    { return TypeMoveScale }
func (CreateColor) Type() Type                  { return TypeCreateColor }
func (PopColor) Type() Type                     { return TypePopColor }
func (DeleteColor) Type() Type                  { return TypeDeleteColor }
func (ChangeColorValue) Type() Type             { return TypeChangeColorValue }
func (CreateCurveFromScale) Type() Type         { return TypeCreateCurveFromScale }
func (ChangeScaleCurve) Type() Type             { return TypeChangeScaleCurve }
func (ChangeCurveName) Type() Type              { return TypeChangeCurveName }
func (ChangeCurveValue) Type() Type             { return TypeChangeCurveValue }
func (DeleteCurve) Type() Type                  { return TypeDeleteCurve }
func (ApplyEasingFunction) Type() Type          { return TypeApplyEasingFunction }
func (CreateNamingSchemeFromScale) Type() Type  { return TypeCreateNamingSchemeFromScale }
func (ChangeNamingSchemeName) Type() Type       { return TypeChangeNamingSchemeName }
func (ChangeNameInNamingScheme) Type() Type     { return TypeChangeNameInNamingScheme }
func (DeleteNamingScheme) Type() Type           { return TypeDeleteNamingScheme }
func (ChangeScaleNamingScheme) Type() Type      { return TypeChangeScaleNamingScheme }
func (Undo) Type() Type                         { return TypeUndo }
func (Redo) Type() Type                         { return TypeRedo }
