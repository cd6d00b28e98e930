package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	List   *List
	Status *Status
	Type   *ActivityType
	Limit  int
	Offset int
}
