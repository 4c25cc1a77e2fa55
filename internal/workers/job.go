package workers

import "context"

type Job[A, R any] struct {
	Description JobDescriptor
	ExecFn      ExecutionFn[A, R]
	Args        A
}

type ExecutionFn[A, R any] func(ctx context.Context, args A) (R, error)

type JobID string
type JobType string
type jobMetadata map[string]any

type JobDescriptor struct {
	ID       JobID
	JobType  JobType
	Metadata jobMetadata
}

type Result[R any] struct {
	Value       R
	Err         error
	Description JobDescriptor
}

func (j Job[A, R]) execute(ctx context.Context) Result[R] {
	value, err := j.ExecFn(ctx, j.Args)
	if err != nil {
		return Result[R]{
			Err:         err,
			Description: j.Description,
		}
	}

	return Result[R]{
		Value:       value,
		Description: j.Description,
	}
}
