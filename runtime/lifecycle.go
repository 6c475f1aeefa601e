package runtime

// Mounter is implemented by components that need one-time setup.
// OnMount runs once, right before the first render of an instance.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that derive state from props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that hold resources.
// OnUnmount runs when the instance is no longer part of the rendered tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater is implemented by components whose instance is reused across
// renders. ApplyProps copies the props of next (a freshly built instance of
// the same type) onto the receiver and must leave private state untouched.
type PropUpdater interface {
	ApplyProps(next Component)
}
