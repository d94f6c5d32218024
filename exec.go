package ballicon

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/tennismath/ballicon/utils"
)

// maxWorkers bounds the number of supersampled canvases alive at the same time.
const maxWorkers = 4

// Default output locations, relative to the project root.
const (
	DefaultDst    = "public"
	DefaultAssets = "ios/App/App/Assets.xcassets/AppIcon.appiconset"
)

// Target is an output file name and the icon size written into it.
type Target struct {
	Name string
	Size int
}

// DefaultTargets is the icon set written into the output directory.
var DefaultTargets = []Target{
	{Name: "icon-1024.png", Size: 1024},
	{Name: "icon-180.png", Size: 180},
	{Name: "icon-192.png", Size: 192},
	{Name: "icon-512.png", Size: 512},
	{Name: "favicon-32.png", Size: 32},
	{Name: "favicon-16.png", Size: 16},
}

var (
	// AppIconTarget is the Xcode app icon, written only into an existing asset catalog.
	AppIconTarget = Target{Name: "AppIcon-512@2x.png", Size: 1024}
	// FaviconICOTarget is the optional legacy favicon.
	FaviconICOTarget = Target{Name: "favicon.ico", Size: 32}
)

// Ops holds the options of an icon set generation run.
type Ops struct {
	Dst     string
	Assets  string
	Workers int
	ICO     bool
	Targets []Target
}

// Result holds the outcome of a single generated icon.
type Result struct {
	Target Target
	Path   string
	Err    error
}

type job struct {
	index  int
	target Target
	path   string
}

type outcome struct {
	index int
	Result
}

// HasAssets reports whether the platform asset directory exists.
func (op *Ops) HasAssets() bool {
	if op.Assets == "" {
		return false
	}
	fi, err := os.Stat(op.Assets)
	return err == nil && fi.IsDir()
}

// jobs lists the files to generate in the order they are reported.
func (op *Ops) jobs() []job {
	targets := op.Targets
	if targets == nil {
		targets = DefaultTargets
	}
	jobs := make([]job, 0, len(targets)+2)
	add := func(dir string, t Target) {
		jobs = append(jobs, job{
			index:  len(jobs),
			target: t,
			path:   filepath.Join(dir, t.Name),
		})
	}

	for _, t := range targets {
		add(op.Dst, t)
	}
	if op.ICO {
		add(op.Dst, FaviconICOTarget)
	}
	if op.HasAssets() {
		add(op.Assets, AppIconTarget)
	}
	return jobs
}

// Generate renders every target and writes it to disk, creating the output
// directory if needed. The icons are rendered concurrently by a bounded pool
// of workers; the results are returned in table order together with the first
// error encountered, if any.
func (op *Ops) Generate(r *Renderer) ([]Result, error) {
	if r == nil {
		r = &Renderer{}
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return nil, &WriteError{Path: op.Dst, Err: err}
	}

	jobs := op.jobs()
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := op.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = utils.Clamp(workers, 1, utils.Min(maxWorkers, len(jobs)))

	var wg sync.WaitGroup
	done := make(chan interface{})
	defer close(done)

	queue := make(chan job)
	go func() {
		defer close(queue)
		for _, j := range jobs {
			select {
			case <-done:
				return
			case queue <- j:
			}
		}
	}()

	ch := make(chan outcome)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(r, queue, ch, done)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	results := make([]Result, len(jobs))
	for res := range ch {
		results[res.index] = res.Result
	}

	for _, res := range results {
		if res.Err != nil {
			return results, res.Err
		}
	}
	return results, nil
}

// consumer renders the icons received on the queue and sends the outcome on the results channel.
func consumer(
	r *Renderer,
	queue <-chan job,
	res chan<- outcome,
	done <-chan interface{},
) {
	for j := range queue {
		err := render(r, j.target, j.path)

		select {
		case <-done:
			return
		case res <- outcome{
			index: j.index,
			Result: Result{
				Target: j.target,
				Path:   j.path,
				Err:    err,
			},
		}:
		}
	}
}

func render(r *Renderer, t Target, path string) error {
	img, err := r.Render(t.Size)
	if err != nil {
		return fmt.Errorf("unable to render %s: %w", t.Name, err)
	}
	return WriteFile(path, img)
}

// Execute generates the icon set and reports the progress on the standard error.
func (op *Ops) Execute(r *Renderer) error {
	var spinner *utils.Spinner
	if utils.IsTerminal(os.Stderr) {
		spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
			utils.DecorateText("🎾 BALLICON", utils.StatusMessage),
			utils.DecorateText("⇢ rendering the icon set...", utils.DefaultMessage),
		), time.Millisecond*80)
		spinner.Start()
	}

	now := time.Now()
	results, err := op.Generate(r)

	if spinner != nil {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("🎾 BALLICON", utils.StatusMessage),
				utils.DecorateText("rendering the icon set failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("🎾 BALLICON", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the icon set has been rendered successfully ✔", utils.SuccessMessage),
			)
		}
		spinner.Stop()
	}

	for _, res := range results {
		op.printOpStatus(res)
	}
	if op.Assets != "" && !op.HasAssets() {
		fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateText(
			fmt.Sprintf("Asset directory %s not found, skipping %s", op.Assets, AppIconTarget.Name),
			utils.NoticeMessage,
		))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// printOpStatus displays the relevant information about a generated icon.
func (op *Ops) printOpStatus(res Result) {
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("Failed to create %s:", res.Target.Name), utils.ErrorMessage),
			utils.DecorateText(res.Err.Error(), utils.DefaultMessage),
		)
		return
	}
	if res.Path == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "Created %s %s\n",
		utils.DecorateText(res.Path, utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("(%dx%d)", res.Target.Size, res.Target.Size), utils.DefaultMessage),
	)
}
