package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pxrem/archive"
	"pxrem/config"
	"pxrem/px2rem"
	"pxrem/state"
	"pxrem/style"
	"pxrem/unitless"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	// empty destination means STDOUT for single file and working directory
	// otherwise
	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	name := env.Cfg.Output.Format
	if cmd.IsSet("to") {
		name = cmd.String("to")
	}
	env.Format, err = config.ParseOutputFmt(name)
	if err != nil {
		log.Warn("Unknown output format requested, switching to css", zap.Error(err))
		env.Format = config.OutputFmtCss
	}

	if env.Converter, err = newConverter(cmd, &env.Cfg.Conversion); err != nil {
		return err
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	opts := env.Converter.Options()
	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format),
		zap.Float64("root_value", opts.RootValue), zap.Int("precision", opts.Precision))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, os.Stdout, log)
}

// newConverter creates converter from configuration, command line flags take
// precedence.
func newConverter(cmd *cli.Command, conf *config.ConversionConfig) (*px2rem.Converter, error) {
	options := []px2rem.Option{px2rem.WithOptions(conf.Options())}
	if cmd.IsSet("root-value") {
		v := cmd.Float("root-value")
		if v <= 0 {
			return nil, fmt.Errorf("root value must be positive: %v", v)
		}
		options = append(options, px2rem.WithRootValue(v))
	}
	if cmd.IsSet("precision") {
		p := cmd.Int("precision")
		if p < 0 || p > 15 {
			return nil, fmt.Errorf("precision must be in range [0, 15]: %d", p)
		}
		options = append(options, px2rem.WithPrecision(p))
	}
	if cmd.IsSet("min-pixel-value") {
		v := cmd.Float("min-pixel-value")
		if v < 0 {
			return nil, fmt.Errorf("minimal pixel value cannot be negative: %v", v)
		}
		options = append(options, px2rem.WithMinPixelValue(v))
	}
	if cmd.IsSet("media-query") {
		options = append(options, px2rem.WithMediaQuery(cmd.Bool("media-query")))
	}
	return px2rem.New(unitless.Default.With(conf.Unitless...), options...), nil
}

// process handles the core conversion logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly. Converted single file goes to stdout when dst is empty.
func process(ctx context.Context, src, dst string, stdout io.Writer, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if dst, err = destinationDir(dst); err != nil {
				return err
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			if dst, err = destinationDir(dst); err != nil {
				return err
			}
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if isStyleFile(head) && len(tail) == 0 {
			if err := processFile(ctx, head, filepath.Base(head), dst, stdout, log); err != nil {
				return err
			}
			break
		}
		return fmt.Errorf("input was not recognized as style file (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

func destinationDir(dst string) (string, error) {
	if len(dst) != 0 {
		return dst, nil
	}
	dst, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get working directory: %w", err)
	}
	return dst, nil
}

// processDir walks directory tree finding style files and archives and
// processes them in natural order. Failures are logged and collected, the
// rest of the files are still processed.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	count := 0
	for _, path := range paths {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if isStyleFile(path) {
			count++
			if er := processFile(ctx, path, rel, dst, nil, log); er != nil {
				log.Error("Unable to process file", zap.String("file", path), zap.Error(er))
				err = multierr.Append(err, er)
			}
			continue
		}

		isArchive, er := isArchiveFile(path)
		if er != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(er))
			continue
		}
		if !isArchive {
			log.Debug("Skipping file, not recognized as style file or archive", zap.String("file", path))
			continue
		}
		count++
		if er := processArchive(ctx, path, "", filepath.Dir(rel), dst, log); er != nil {
			log.Error("Unable to process archive", zap.String("file", path), zap.Error(er))
			err = multierr.Append(err, er)
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

// processArchive walks all style files inside archive under "pathIn" and
// processes them. "pathOut" is prepended to names inside archive when
// building output names.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	var failed error

	match := func(name string) bool {
		return strings.HasPrefix(name, pathIn) && isStyleFile(name)
	}
	err = archive.Walk(path, match, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			failed = multierr.Append(failed, err)
			return nil
		}
		defer r.Close()

		if err := processStyle(ctx, r, filepath.Join(pathOut, filepath.FromSlash(f.FileHeader.Name)), dst, nil, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			failed = multierr.Append(failed, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
	}
	return multierr.Append(err, failed)
}

func processFile(ctx context.Context, path, src, dst string, stdout io.Writer, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open style file: %w", err)
	}
	defer file.Close()
	return processStyle(ctx, file, src, dst, stdout, log)
}

// processStyle converts single style object. "src" is part of the source path
// (always including file name) relative to the original path. When actual file
// was specified it will be just base file name without a path. When looking
// inside archive or directory it will be relative path inside archive or
// directory (including base file name). "dst" is the destination directory
// where the converted file should be written, when empty result goes to
// stdout.
func processStyle(ctx context.Context, r io.Reader, src, dst string, stdout io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Debug("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Debug("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	node, err := style.Decode(selectReader(r))
	if err != nil {
		return fmt.Errorf("unable to parse style source (%s): %w", src, err)
	}

	converted := style.Walk(node, env.Converter)
	if ce := log.Check(zap.DebugLevel, "Style converted"); ce != nil {
		ce.Write(zap.String("from", src), zap.String("tree", "\n"+style.Dump(converted)))
	}

	data, err := encode(converted, env.Format, env.Cfg.Output.Selector)
	if err != nil {
		return fmt.Errorf("unable to prepare output (%s): %w", src, err)
	}

	if len(dst) == 0 {
		outputName = "STDOUT"
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		return nil
	}

	outputName = buildOutputPath(src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Info("Converted", zap.String("from", src), zap.String("to", outputName))
	return nil
}
