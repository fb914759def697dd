package apierrors

const (
	MsgMissingOwner       = "missingOwner"
	MsgInvalidOwner       = "invalidOwner"
	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgTitleTooLong       = "titleTooLong"
	MsgDescriptionTooLong = "descriptionTooLong"
	MsgTodoListFull       = "todoListFull"
	MsgInvalidPriority    = "invalidPriority"
	MsgFailListTodos      = "failListTodos"
	MsgFailGetTodo        = "failGetTodo"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailToggleTodo     = "failToggleTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
	MsgFailGetStatistics  = "failGetStatistics"
)
