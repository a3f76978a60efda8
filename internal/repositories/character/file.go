package character

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
)

const documentExt = ".json"

type fileRepository struct {
	fs  afero.Fs
	dir string
}

// FileConfig configures the directory-of-documents store. Each record is
// kept as "<id>.json" in Dir.
type FileConfig struct {
	Fs  afero.Fs
	Dir string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a repository over a directory of JSON documents, creating
// the directory if needed.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if err := fsys.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", cfg.Dir)
	}
	return &fileRepository{fs: fsys, dir: cfg.Dir}, nil
}

func (r *fileRepository) path(id string) (string, error) {
	if id == "" {
		return "", errors.InvalidArgument(errCharacterIDEmpty)
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errors.InvalidArgumentf("invalid character ID %q", id)
	}
	return filepath.Join(r.dir, id+documentExt), nil
}

func (r *fileRepository) exists(path string) (bool, error) {
	ok, err := afero.Exists(r.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", path)
	}
	return ok, nil
}

func (r *fileRepository) write(path string, c *entities.Character) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err := r.fs.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to move %s into place", path)
	}
	return nil
}

func (r *fileRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}
	path, err := r.path(input.Character.GetID())
	if err != nil {
		return nil, err
	}
	ok, err := r.exists(path)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.GetID())
	}
	if err := r.write(path, input.Character); err != nil {
		return nil, err
	}
	return &CreateOutput{Character: input.Character}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	c, upgraded, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	if c.ID == "" {
		c.ID = input.ID
	}
	if upgraded {
		slog.DebugContext(ctx, "upgraded legacy character record", "character_id", input.ID)
	}
	return &GetOutput{Character: c}, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}
	path, err := r.path(input.Character.GetID())
	if err != nil {
		return nil, err
	}
	ok, err := r.exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.GetID())
	}
	if err := r.write(path, input.Character); err != nil {
		return nil, err
	}
	return &UpdateOutput{Character: input.Character}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}
	if err := r.fs.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to remove %s", path)
	}
	return &DeleteOutput{}, nil
}

// List orders documents by modification time then name
func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	infos, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.dir)
	}
	sort.SliceStable(infos, func(i, j int) bool {
		if !infos[i].ModTime().Equal(infos[j].ModTime()) {
			return infos[i].ModTime().Before(infos[j].ModTime())
		}
		return infos[i].Name() < infos[j].Name()
	})

	characters := make([]*entities.Character, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), documentExt) {
			continue
		}
		id := strings.TrimSuffix(info.Name(), documentExt)
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable character document",
				"file", info.Name(),
				"error", err.Error())
			continue
		}
		characters = append(characters, out.Character)
	}
	return &ListOutput{Characters: characters}, nil
}
