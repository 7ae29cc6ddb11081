package services

import (
	"sort"

	"github.com/mimi0225/yourcalendar/internal/models"
	"github.com/mimi0225/yourcalendar/internal/storage"
)

type EducationService struct {
	organizer *Organizer
}

func NewEducationService(organizer *Organizer) *EducationService {
	return &EducationService{organizer: organizer}
}

func (service *EducationService) workCollections() []*workCollection {
	return []*workCollection{
		{kind: models.WorkKindAssignment, records: service.organizer.Assignments},
		{kind: models.WorkKindTest, records: service.organizer.Tests},
		{kind: models.WorkKindProject, records: service.organizer.Projects},
	}
}

type workCollection struct {
	kind    string
	records interface {
		All() []models.WorkItem
	}
}

// RemoveClass deletes the class; the cascade table removes every
// assignment, test and project that references it.
func (service *EducationService) RemoveClass(classID string) error {
	if _, found := service.organizer.Classes.Get(classID); !found {
		return ErrClassNotFound
	}
	if err := service.organizer.Cascade(storage.NamespaceClasses, classID); err != nil {
		return err
	}
	service.organizer.Classes.Remove(classID)
	return nil
}

// ToggleCompleted flips the completed flag of a work item in whichever
// collection holds it.
func (service *EducationService) ToggleCompleted(id string) (models.WorkItem, error) {
	for _, collection := range service.workCollections() {
		for _, item := range collection.records.All() {
			if item.ID != id {
				continue
			}
			switch collection.kind {
			case models.WorkKindAssignment:
				return service.organizer.Assignments.Toggle(id, flipCompleted)
			case models.WorkKindTest:
				return service.organizer.Tests.Toggle(id, flipCompleted)
			default:
				return service.organizer.Projects.Toggle(id, flipCompleted)
			}
		}
	}
	return models.WorkItem{}, ErrNotFound
}

func flipCompleted(item *models.WorkItem) { item.Completed = !item.Completed }

// Upcoming returns incomplete work items across all three kinds,
// sorted by day then title.
func (service *EducationService) Upcoming() []models.WorkItem {
	items := make([]models.WorkItem, 0)
	for _, collection := range service.workCollections() {
		for _, item := range collection.records.All() {
			if !item.Completed {
				items = append(items, item)
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !SameDay(items[i].Date, items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Title < items[j].Title
	})
	return items
}

// WorkForClass lists every work item referencing the class.
func (service *EducationService) WorkForClass(classID string) []models.WorkItem {
	items := make([]models.WorkItem, 0)
	for _, collection := range service.workCollections() {
		for _, item := range collection.records.All() {
			if item.ClassID == classID {
				items = append(items, item)
			}
		}
	}
	return items
}
