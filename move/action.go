package move

// Action represents one atomic transformation: a piece goes from a source
// location to a destination location. The piece identifier is optional; when
// absent the piece is inferred later from game context by the consumer.
// Actions are immutable values, comparable with ==.
type Action struct {
	source      string
	destination string
	piece       string // "" means inferred
}

// NewAction builds a validated action. The reserve sentinel "*" is passed
// literally as source or destination; piece "" means inferred. Field
// failures return location or piece errors wrapped in an action error.
func NewAction(v Validator, source, destination, piece string) (Action, error) {
	if !v.IsValidLocation(source) {
		return Action{}, newActionError(newFieldError(KindLocation, source, "invalid source location"))
	}
	if !v.IsValidLocation(destination) {
		return Action{}, newActionError(newFieldError(KindLocation, destination, "invalid destination location"))
	}
	if piece != "" && !v.IsValidPiece(piece) {
		return Action{}, newActionError(newFieldError(KindPiece, piece, "invalid piece identifier"))
	}
	return Action{source: source, destination: destination, piece: piece}, nil
}

func (a Action) Source() string      { return a.source }
func (a Action) Destination() string { return a.destination }

// Piece returns the explicit piece identifier, or false when inferred.
func (a Action) Piece() (string, bool) {
	return a.piece, a.piece != ""
}

// IsInferred reports whether the piece field is omitted.
func (a Action) IsInferred() bool { return a.piece == "" }

func (a Action) IsPieceSpecified() bool { return !a.IsInferred() }

// IsPieceValid is false for inferred actions; otherwise it delegates to the
// validator.
func (a Action) IsPieceValid(v Validator) bool {
	return a.piece != "" && v.IsValidPiece(a.piece)
}

func (a Action) IsFromReserve() bool { return a.source == Reserve }
func (a Action) IsToReserve() bool   { return a.destination == Reserve }

// IsBoardToBoard reports whether both endpoints are board coordinates.
func (a Action) IsBoardToBoard() bool {
	return !a.IsFromReserve() && !a.IsToReserve()
}

// IsDrop reports a reserve-to-board action.
func (a Action) IsDrop() bool {
	return a.IsFromReserve() && !a.IsToReserve()
}

// IsCapture reports a board-to-reserve action.
func (a Action) IsCapture() bool {
	return !a.IsFromReserve() && a.IsToReserve()
}

// IsBoardMove reports an ordinary move, including the in-place pass where
// source equals destination.
func (a Action) IsBoardMove() bool {
	return !a.IsDrop() && !a.IsCapture()
}

// IsValid re-checks both endpoints and, when present, the piece against v.
func (a Action) IsValid(v Validator) bool {
	if !v.IsValidLocation(a.source) || !v.IsValidLocation(a.destination) {
		return false
	}
	return a.piece == "" || v.IsValidPiece(a.piece)
}

// Tokens returns the action's flat token form: [source, destination] or
// [source, destination, piece]. This is the exact inverse of decoding a
// single group.
func (a Action) Tokens() []string {
	if a.piece == "" {
		return []string{a.source, a.destination}
	}
	return []string{a.source, a.destination, a.piece}
}
