package systemcodes

const (
	ErrorCodeGeneric        = 3
	ErrorCodeClassification = 4
)
