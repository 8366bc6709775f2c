package spawner

import "errors"

var (
	ErrNotFound      = errors.New("spawner not found")
	ErrExists        = errors.New("spawner already exists")
	ErrInvalidKind   = errors.New("spawner kind is required")
	ErrLocked        = errors.New("spawner in use")
	ErrNotOwner      = errors.New("no open session on spawner")
	ErrCooldown      = errors.New("interaction too fast")
	ErrSettlement    = errors.New("settlement failed")
	ErrSiphonExists  = errors.New("siphon already attached")
	ErrSiphonMissing = errors.New("siphon not attached")
	ErrBadRequest    = errors.New("bad request")
	ErrNoPersistence = errors.New("persistence disabled")
	ErrNoStorage     = errors.New("object storage disabled")
)
