package models

// TabSettings controls which tracker modules the client shows. It is
// a singleton namespace, not a record collection.
type TabSettings struct {
	Calendar bool `json:"calendar"`
	Student  bool `json:"student"`
	Period   bool `json:"period"`
	Sports   bool `json:"sports"`
	Chores   bool `json:"chores"`
	Budget   bool `json:"budget"`
}

func DefaultTabSettings() TabSettings {
	return TabSettings{
		Calendar: true,
		Student:  true,
		Period:   true,
		Sports:   true,
		Chores:   true,
		Budget:   true,
	}
}
