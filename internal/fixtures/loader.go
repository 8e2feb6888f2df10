// Package fixtures loads the per-platform <key>_roms.json files into the
// in-memory catalog.
package fixtures

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/emulatorgames/rom-catalog/internal/models"
)

// FileSuffix marks a fixture file; the part before it is the platform key.
const FileSuffix = "_roms.json"

var (
	ErrDataDirNotFound = errors.New("data directory not found")
	ErrNoFixtureFiles  = errors.New("no fixture files found in data directory")
)

// LoadReport summarizes one load pass.
type LoadReport struct {
	Dir        string
	Files      int
	Skipped    int
	Games      int
	Categories int
	Duration   time.Duration
	Err        error
}

type Observer func(LoadReport)

// Loader reads the fixture directory once and caches the result for its
// lifetime. It is safe for concurrent use.
type Loader struct {
	fsys     fs.FS
	dir      string
	log      logrus.FieldLogger
	observer Observer

	once sync.Once
	data *models.RomData
}

type Option func(*Loader)

func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

func WithObserver(observer Observer) Option {
	return func(l *Loader) {
		l.observer = observer
	}
}

// NewLoader reads fixtures from a directory on disk.
func NewLoader(dir string, opts ...Option) *Loader {
	return NewLoaderFS(os.DirFS(dir), dir, opts...)
}

// NewLoaderFS reads fixtures from the root of fsys. name is only used in logs.
func NewLoaderFS(fsys fs.FS, name string, opts ...Option) *Loader {
	l := &Loader{
		fsys: fsys,
		dir:  name,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the catalog, reading the fixtures on the first call only.
// Directory problems yield an empty catalog rather than an error.
func (l *Loader) Load() (*models.RomData, error) {
	l.once.Do(func() {
		l.data = l.load()
	})
	return l.data, nil
}

func (l *Loader) load() *models.RomData {
	start := time.Now()
	report := LoadReport{Dir: l.dir}
	log := l.log.WithField("dir", l.dir)

	data, err := l.readAll(log, &report)
	if err != nil {
		log.WithError(err).Error("Failed to load ROM data, serving an empty catalog")
		data = models.EmptyRomData()
		report.Err = err
	}

	report.Games = len(data.Games)
	report.Categories = len(data.Categories)
	report.Duration = time.Since(start)

	log.WithFields(logrus.Fields{
		"files":       report.Files,
		"skipped":     report.Skipped,
		"games":       report.Games,
		"categories":  report.Categories,
		"duration_ms": report.Duration.Milliseconds(),
	}).Info("ROM data loaded")

	if l.observer != nil {
		l.observer(report)
	}
	return data
}

func (l *Loader) readAll(log logrus.FieldLogger, report *LoadReport) (*models.RomData, error) {
	info, err := fs.Stat(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataDirNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory", ErrDataDirNotFound)
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataDirNotFound, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), FileSuffix) {
			files = append(files, entry.Name())
		}
	}
	log.WithFields(logrus.Fields{
		"entries":  len(entries),
		"fixtures": len(files),
	}).Debug("Scanned data directory")

	if len(files) == 0 {
		return nil, ErrNoFixtureFiles
	}
	report.Files = len(files)

	data := &models.RomData{
		Categories: []models.Category{},
		Games:      []models.Game{},
	}
	ids := newIDSet()

	for _, file := range files {
		key := strings.TrimSuffix(file, FileSuffix)

		raws, err := l.readFile(log.WithField("file", file), file)
		if err != nil {
			log.WithError(err).WithField("file", file).Error("Failed to load fixture file")
			report.Skipped++
			continue
		}

		categoryID := CategoryID(key)
		games := make([]models.Game, 0, len(raws))
		for index, raw := range raws {
			want := baseID(raw, key, index)
			id := ids.claim(key, want)
			if id != want {
				log.WithFields(logrus.Fields{
					"file":     file,
					"id":       want,
					"assigned": id,
				}).Warn("Duplicate game id, qualified with platform key")
			}
			games = append(games, convertGame(raw, key, id, categoryID))
		}

		data.Games = append(data.Games, games...)
		data.Categories = append(data.Categories, buildCategory(key, games))

		log.WithFields(logrus.Fields{
			"file":  file,
			"games": len(games),
		}).Info("Processed fixture file")
	}

	data.Stats = buildStats(data)
	return data, nil
}

// readFile decodes a fixture array. Elements that are not objects become
// empty records so the rest of the file still loads.
func (l *Loader) readFile(log logrus.FieldLogger, name string) ([]models.RawRom, error) {
	content, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(content, &elements); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if elements == nil {
		return nil, fmt.Errorf("parse %s: expected a JSON array", name)
	}

	raws := make([]models.RawRom, len(elements))
	for index, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 || element[0] != '{' {
			log.WithField("index", index).Warn("Fixture element is not an object, using an empty record")
			continue
		}
		if err := json.Unmarshal(element, &raws[index]); err != nil {
			log.WithError(err).WithField("index", index).Warn("Failed to decode fixture element, using an empty record")
			raws[index] = models.RawRom{}
		}
	}
	return raws, nil
}

func buildStats(data *models.RomData) models.Stats {
	var downloads int64
	for _, game := range data.Games {
		downloads += game.Downloads
	}
	thousands := int64(math.Floor(float64(downloads) / 1000))

	activeUsers := 10000 + int(variation(
		"active-users",
		fmt.Sprint(len(data.Games)),
		fmt.Sprint(downloads),
	)*50000)

	return models.Stats{
		TotalGames:      len(data.Games),
		TotalCategories: len(data.Categories),
		TotalDownloads:  fmt.Sprintf("%dK", thousands),
		ActiveUsers:     message.NewPrinter(language.English).Sprintf("%d", activeUsers),
	}
}

// idSet hands out catalog-wide unique game ids.
type idSet map[string]struct{}

func newIDSet() idSet {
	return idSet{}
}

// claim returns want if unused, otherwise want qualified by the platform
// key (and a counter if that is taken too).
func (s idSet) claim(key, want string) string {
	id := want
	if _, taken := s[id]; taken {
		id = key + "-" + want
		for n := 2; ; n++ {
			if _, taken := s[id]; !taken {
				break
			}
			id = fmt.Sprintf("%s-%s-%d", key, want, n)
		}
	}
	s[id] = struct{}{}
	return id
}
