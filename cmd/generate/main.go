// Command generate runs one content generation from the command line and
// prints the result as JSON.
//
// Usage:
//
//	generate -prompt "tips for morning routines" -type post -platform instagram
//	generate -prompt "vegan recipes" -type carousel -slides 5 -images -out ./slides
//
// With -images, generated slide images are written to the -out directory as
// slide-01.png, slide-02.png and so on. Slides whose prompt was too short
// keep the placeholder URL and get no file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/gemini"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/imagegen"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/logger"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/memstore"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
)

type options struct {
	request domain.GenerationRequest
	images  bool
	outDir  string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	// stdout carries the JSON result
	log := logger.New(os.Stderr, cfg.Server.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var (
		opts        options
		contentType string
		platform    string
	)

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.request.Prompt, "prompt", "", "what the content should be about (required)")
	fs.StringVar(&contentType, "type", string(domain.ContentTypePost), "content type: post, reel, carousel, story, caption, hashtags, ad-copy, bio")
	fs.StringVar(&platform, "platform", string(domain.PlatformInstagram), "target platform")
	fs.StringVar(&opts.request.Tone, "tone", "casual", "voice of the copy")
	fs.Float64Var(&opts.request.Creativity, "creativity", 0.7, "sampling temperature between 0 and 1")
	fs.IntVar(&opts.request.MaxLength, "max-length", 280, "maximum length in characters (50-2000)")
	fs.IntVar(&opts.request.SlideCount, "slides", 0, "number of carousel slides (2-10, carousel only)")
	fs.BoolVar(&opts.images, "images", false, "also generate slide images for a carousel")
	fs.StringVar(&opts.outDir, "out", "images", "directory slide images are written to (with -images)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.request.ContentType = domain.ContentType(contentType)
	opts.request.Platform = domain.Platform(platform)
	if opts.request.ContentType.IsCarousel() && opts.request.SlideCount == 0 {
		opts.request.SlideCount = domain.DefaultSlideCount
	}
	return opts, nil
}

// result is the JSON document printed on success.
type result struct {
	*service.Outcome
	Images []slideFile `json:"images,omitempty"`
}

// slideFile is a slide image reference plus the file it was written to.
// Placeholders have no file.
type slideFile struct {
	domain.SlideImage
	Path string `json:"path,omitempty"`
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, opts options, out io.Writer) error {
	if err := opts.request.Validate(); err != nil {
		return err
	}

	text, err := gemini.NewGenerator(ctx, log, cfg.LLM)
	if err != nil {
		return err
	}
	images, err := imagegen.NewClient(log, cfg.Images)
	if err != nil {
		return err
	}
	imageStore := memstore.NewImageStore()
	studio, err := service.NewStudio(text, images, imageStore, log)
	if err != nil {
		return err
	}

	session := service.NewSessionManager(studio, service.NewLogNotifier(log), log).Create()
	outcome, err := session.Generate(ctx, opts.request)
	if err != nil {
		return err
	}

	res := result{Outcome: outcome}
	if opts.images && outcome.Success && opts.request.ContentType.IsCarousel() {
		set, err := session.GenerateImages(ctx)
		if err != nil {
			return err
		}
		res.Images, err = writeSlideImages(ctx, imageStore, set, opts.outDir)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if !outcome.Success {
		return errors.New("generation failed")
	}
	return nil
}

// writeSlideImages copies every stored slide image out of imageStore into
// dir, which is created if needed.
func writeSlideImages(ctx context.Context, imageStore store.ImageStore, set *domain.ImageSet, dir string) ([]slideFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := make([]slideFile, 0, len(set.Images))
	for _, slide := range set.Images {
		file := slideFile{SlideImage: slide}
		if slide.Placeholder {
			files = append(files, file)
			continue
		}

		id, err := uuid.Parse(strings.TrimPrefix(slide.URL, service.ImageURLPrefix))
		if err != nil {
			return nil, fmt.Errorf("slide %d: unexpected image URL %q: %w", slide.Index+1, slide.URL, err)
		}
		img, err := imageStore.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", slide.Index+1, err)
		}

		file.Path = filepath.Join(dir, fmt.Sprintf("slide-%02d%s", slide.Index+1, extensionFor(img.ContentType)))
		if err := os.WriteFile(file.Path, img.Data, 0o644); err != nil {
			return nil, fmt.Errorf("slide %d: failed to write image: %w", slide.Index+1, err)
		}
		files = append(files, file)
	}
	return files, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
