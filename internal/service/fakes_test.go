package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/repository"
)

var errStoreDown = errors.New("store down")

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.TelegramID != nil {
		for _, u := range r.users {
			if u.TelegramID != nil && *u.TelegramID == *user.TelegramID {
				return fmt.Errorf("create user: %w", repository.ErrTelegramTaken)
			}
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByAPIToken(ctx context.Context, token string) (*model.User, error) {
	for _, u := range r.users {
		if u.APIToken == token {
			return u, nil
		}
	}
	return nil, nil
}

type fakeCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
}

func newFakeCourseRepo(courses ...*model.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[int64]*model.Course)}
	for _, c := range courses {
		r.courses[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *model.Course) error {
	r.nextID++
	course.ID = r.nextID
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	if c, ok := r.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCourseRepo) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Course, error) {
	var out []*model.Course
	for _, c := range r.courses {
		if c.TutorID == tutorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetAll(ctx context.Context) ([]*model.Course, error) {
	var out []*model.Course
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, course *model.Course) (bool, error) {
	if _, ok := r.courses[course.ID]; !ok {
		return false, nil
	}
	cp := *course
	r.courses[course.ID] = &cp
	return true, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.courses[id]; !ok {
		return false, nil
	}
	delete(r.courses, id)
	return true, nil
}

type fakeRegistrationRepo struct {
	regs      map[int64]*model.CourseRegistration
	users     *fakeUserRepo
	courses   *fakeCourseRepo
	nextID    int64
	decideErr error
	createErr error
	calls     int
}

func newFakeRegistrationRepo(users *fakeUserRepo, courses *fakeCourseRepo, regs ...*model.CourseRegistration) *fakeRegistrationRepo {
	r := &fakeRegistrationRepo{regs: make(map[int64]*model.CourseRegistration), users: users, courses: courses}
	for _, reg := range regs {
		r.regs[reg.ID] = reg
		if reg.ID > r.nextID {
			r.nextID = reg.ID
		}
	}
	return r
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, reg *model.CourseRegistration) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	reg.ID = r.nextID
	reg.CreatedAt = time.Now()
	cp := *reg
	r.regs[reg.ID] = &cp
	return nil
}

func (r *fakeRegistrationRepo) GetByID(ctx context.Context, id int64) (*model.CourseRegistration, error) {
	r.calls++
	if reg, ok := r.regs[id]; ok {
		cp := *reg
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRegistrationRepo) sorted() []*model.CourseRegistration {
	var out []*model.CourseRegistration
	for _, reg := range r.regs {
		out = append(out, reg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRegistrationRepo) GetByTutorWithStudent(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error) {
	r.calls++
	var out []*model.RegistrationView
	for _, reg := range r.sorted() {
		if reg.TutorID != tutorID {
			continue
		}
		view := &model.RegistrationView{CourseRegistration: *reg}
		if u := r.users.users[reg.StudentID]; u != nil {
			view.StudentName = u.DisplayName()
		}
		if c := r.courses.courses[reg.CourseID]; c != nil {
			view.CourseName = c.Name
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeRegistrationRepo) GetByStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error) {
	r.calls++
	var out []*model.CourseRegistration
	for _, reg := range r.sorted() {
		if reg.StudentID == studentID {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) HasActiveRegistration(ctx context.Context, studentID, courseID int64) (bool, error) {
	r.calls++
	for _, reg := range r.regs {
		if reg.StudentID == studentID && reg.CourseID == courseID && !reg.IsRejected() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRegistrationRepo) Decide(ctx context.Context, id, tutorID int64, status model.RegistrationStatus, response string) (bool, error) {
	r.calls++
	if r.decideErr != nil {
		return false, r.decideErr
	}
	reg, ok := r.regs[id]
	if !ok || reg.TutorID != tutorID || !reg.IsPending() {
		return false, nil
	}
	now := time.Now()
	reg.Status = status
	reg.TutorResponse = response
	reg.UpdatedAt = &now
	return true, nil
}

func (r *fakeRegistrationRepo) CountPendingByTutor(ctx context.Context) (map[int64]int, error) {
	r.calls++
	counts := make(map[int64]int)
	for _, reg := range r.regs {
		if reg.IsPending() {
			counts[reg.TutorID]++
		}
	}
	return counts, nil
}

type fakeLessonRepo struct {
	lessons []*model.Lesson
	err     error
}

func (r *fakeLessonRepo) Create(ctx context.Context, lesson *model.Lesson) error {
	if r.err != nil {
		return r.err
	}
	lesson.ID = int64(len(r.lessons) + 1)
	lesson.CreatedAt = time.Now()
	r.lessons = append(r.lessons, lesson)
	return nil
}

func (r *fakeLessonRepo) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Lesson, error) {
	var out []*model.Lesson
	for _, l := range r.lessons {
		if l.TutorID == tutorID {
			out = append(out, l)
		}
	}
	return out, nil
}

type sentMessage struct {
	userID      int64
	text        string
	ctxErr      error
	hasDeadline bool
}

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Notify(ctx context.Context, user *model.User, text string) error {
	if n.err != nil {
		return n.err
	}
	_, hasDeadline := ctx.Deadline()
	n.sent = append(n.sent, sentMessage{userID: user.ID, text: text, ctxErr: ctx.Err(), hasDeadline: hasDeadline})
	return nil
}
