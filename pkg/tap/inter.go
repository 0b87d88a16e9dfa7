package tap

// Outcome defines the read side of a two-armed success/failure container.
type Outcome[T any] interface {
	// Result returns the successful payload
	Result() T
	// Err returns the error if the container is on the failure arm
	Err() error
	// IsSuccess returns true on the success arm
	IsSuccess() bool
}

// Presence defines the read side of a two-armed present/absent container.
type Presence[T any] interface {
	// Get returns the payload and whether it is present
	Get() (T, bool)
	// IsSome returns true on the present arm
	IsSome() bool
}

var (
	_ Outcome[int]  = Result[int]{}
	_ Presence[int] = Option[int]{}
)
