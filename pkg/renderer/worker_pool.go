package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/elidor/go-phong-raytracer/pkg/scene"
	"github.com/elidor/go-phong-raytracer/pkg/tracer"
)

// RowTask represents one scanline of the image to render
type RowTask struct {
	Y int
}

// RowResult contains the result from rendering one scanline
type RowResult struct {
	Y    int
	Rays int
}

// WorkerPool renders scanlines in parallel. Rows are disjoint, so workers
// write to the shared image without locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders individual scanlines with its own ray tracer
type Worker struct {
	ID          int
	tracer      *tracer.RayTracer
	camera      *Camera
	img         *image.RGBA
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a pool of scanline workers for one render. Passing
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(s *scene.Scene, camera *Camera, img *image.RGBA, numWorkers int, shadowBias float64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, camera.Height()),
		resultQueue: make(chan RowResult, camera.Height()),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      tracer.NewRayTracer(s).SetShadowBias(shadowBias),
			camera:      camera,
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- RowResult{Y: task.Y, Rays: w.renderRow(task.Y)}
	}
}

// renderRow traces every pixel of one scanline into the shared image
func (w *Worker) renderRow(y int) int {
	width := w.camera.Width()
	for i := 0; i < width; i++ {
		color := w.tracer.TraceRay(w.camera.RayThrough(i, y))
		w.img.SetRGBA(i, y, toRGBA(color))
	}
	return width
}
