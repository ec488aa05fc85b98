package export

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/model"
	"github.com/ytget/meme-maker/internal/project"
	"github.com/ytget/meme-maker/internal/render"
)

const (
	// DefaultDelay is the pause between consecutive exports of ExportAll
	DefaultDelay = 100 * time.Millisecond

	// A surface that was never drawn is saved blank at this size
	BlankWidth  = 300
	BlankHeight = 150
)

// ErrIndexOutOfRange is returned when exporting a position the project does not have
var ErrIndexOutOfRange = errors.New("meme index out of range")

// Option configures a Service
type Option func(*Service)

// WithDelay sets the pause between consecutive exports
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = d
	}
}

// WithSurfaceFactory sets how off-screen surfaces are created
func WithSurfaceFactory(f func() render.Surface) Option {
	return func(s *Service) {
		s.newSurface = f
	}
}

// WithSleep replaces the pause implementation
func WithSleep(f func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Service) {
		s.sleep = f
	}
}

// Service handles export operations
type Service struct {
	project *project.Project
	engine  *render.Engine
	saver   Saver

	newSurface func() render.Surface
	sleep      func(ctx context.Context, d time.Duration) error

	tasks      map[string]*model.ExportTask
	order      []string
	surfaces   map[string]render.Surface // by meme ID
	delay      time.Duration
	tasksMutex sync.RWMutex

	// one export runs at a time
	runMutex sync.Mutex

	onUpdate func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service
func NewService(p *project.Project, engine *render.Engine, saver Saver, opts ...Option) *Service {
	s := &Service{
		project:  p,
		engine:   engine,
		saver:    saver,
		tasks:    make(map[string]*model.ExportTask),
		surfaces: make(map[string]render.Surface),
		delay:    DefaultDelay,
		newSurface: func() render.Surface {
			return render.NewGGSurface()
		},
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetDelay sets the pause between consecutive exports
func (s *Service) SetDelay(d time.Duration) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if d < 0 {
		d = 0
	}
	s.delay = d
}

// Delay returns the pause between consecutive exports
func (s *Service) Delay() time.Duration {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.delay
}

// Tasks returns copies of all tasks in creation order
func (s *Service) Tasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.order))
	for _, id := range s.order {
		task := *s.tasks[id]
		tasks = append(tasks, &task)
	}
	return tasks
}

// ExportOne renders the meme at index and saves it as "<index+1>.png"
func (s *Service) ExportOne(ctx context.Context, index int) (*model.ExportTask, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	memes := s.project.Memes()
	if index < 0 || index >= len(memes) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.export(ctx, index, memes[index], memes)
}

// ExportAll exports every meme in ascending order. A failed export does not
// stop the loop; the tasks carry the individual outcomes. The context is only
// checked during the pause between exports.
func (s *Service) ExportAll(ctx context.Context) ([]*model.ExportTask, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	memes := s.project.Memes()
	delay := s.Delay()
	klog.Infof("Exporting %d memes with %v between files", len(memes), delay)

	tasks := make([]*model.ExportTask, 0, len(memes))
	for i, m := range memes {
		if i > 0 {
			if err := s.sleep(ctx, delay); err != nil {
				return tasks, err
			}
		}

		task, err := s.export(ctx, i, m, memes)
		if err != nil {
			klog.Warningf("Export of %s failed, continuing: %v", task.FileName, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// export runs one render+save cycle. A render failure still saves the
// surface; only a save failure fails the task. live is the project content the
// export belongs to; surfaces of memes no longer in it are released.
func (s *Service) export(ctx context.Context, index int, m model.Meme, live []model.Meme) (*model.ExportTask, error) {
	task := &model.ExportTask{
		ID:        generateTaskID(),
		Index:     index,
		FileName:  model.ExportFileName(index),
		Status:    model.TaskStatusRendering,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.releaseSurfaces(live)
	surface := s.surfaceFor(m.ID)
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	if err := s.engine.Render(ctx, surface, m); err != nil {
		s.tasksMutex.Lock()
		task.RenderErr = err.Error()
		s.tasksMutex.Unlock()

		if w, h := surface.Size(); w == 0 || h == 0 {
			surface.Resize(BlankWidth, BlankHeight)
		}
	}

	s.setStatus(task, model.TaskStatusSaving)

	path, err := s.saver.Save(ctx, task.FileName, surface)

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputPath = path
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	if err != nil {
		klog.Errorf("Failed to save %s: %v", task.FileName, err)
		return s.snapshot(task), err
	}
	klog.V(1).Infof("Exported %s in %v", path, task.Duration())
	return s.snapshot(task), nil
}

// surfaceFor returns the surface dedicated to the meme; callers hold tasksMutex
func (s *Service) surfaceFor(id string) render.Surface {
	surface, ok := s.surfaces[id]
	if !ok {
		surface = s.newSurface()
		s.surfaces[id] = surface
	}
	return surface
}

// releaseSurfaces drops the surfaces of removed memes; callers hold tasksMutex
func (s *Service) releaseSurfaces(live []model.Meme) {
	ids := make(map[string]bool, len(live))
	for _, m := range live {
		ids[m.ID] = true
	}
	for id := range s.surfaces {
		if !ids[id] {
			delete(s.surfaces, id)
		}
	}
}

func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) snapshot(task *model.ExportTask) *model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	c := *task
	return &c
}

// notifyUpdate calls the update callback with a copy of the task
func (s *Service) notifyUpdate(task *model.ExportTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	c := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&c)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "export-" + uuid.NewString()
}
