package model

type CategoryType int

const (
	CategoryTypeSchedule CategoryType = iota
	CategoryTypeTodo
)

func (t CategoryType) String() string {
	switch t {
	case CategoryTypeSchedule:
		return "SCHEDULE"
	case CategoryTypeTodo:
		return "TODO"
	default:
		return "UNKNOWN"
	}
}

func ParseCategoryType(s string) (CategoryType, error) {
	switch s {
	case "SCHEDULE":
		return CategoryTypeSchedule, nil
	case "TODO":
		return CategoryTypeTodo, nil
	default:
		return 0, ErrInvalidCategoryType
	}
}

type CategoryCreate struct {
	TeamID       int64
	Name         string
	CategoryType CategoryType
	Color        string
}

type Category struct {
	ID int64
	CategoryCreate
}
