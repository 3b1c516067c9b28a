package bake

import "errors"

const Namespace = "bake"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrEmptyCommand  = errors.New(Namespace + ": command has no arguments")
	ErrNilJob        = errors.New(Namespace + ": job has no Run function")
	ErrPoolClosed    = errors.New(Namespace + ": pool is closed")
	ErrSpawn         = errors.New(Namespace + ": failed to spawn command")
	ErrWait          = errors.New(Namespace + ": failed to wait for command")
	ErrAlreadyWaited = errors.New(Namespace + ": process already waited on")
	ErrCommandFailed = errors.New(Namespace + ": command exited with non-zero status")
)
