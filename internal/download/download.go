// Package download fetches the driver and browser binaries the
// WebDriver scripts depend on. Files are verified against a checksum
// when one is known, extracted, and skipped on later runs if already
// present.
package download

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/google/go-github/v27/github"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// File describes how to download a file from the Web.
type File struct {
	URL  string
	Name string
	// Hash of the file contents, hex-encoded. Empty disables
	// verification.
	Hash string
	// HashType is "sha256" (default) or "md5".
	HashType string
	// Rename, when two elements long, renames the extracted entry from
	// the first name to the second.
	Rename []string

	// The directory in which to store the file.
	directory string
}

// Path returns the location the file is downloaded to.
func (f File) Path() string {
	if f.directory != "" {
		return filepath.Join(f.directory, f.Name)
	}
	return f.Name
}

// ChromeDriverFile describes how to download the ChromeDriver binary.
var ChromeDriverFile = File{
	URL:  "https://storage.googleapis.com/chrome-for-testing-public/124.0.6367.91/linux64/chromedriver-linux64.zip",
	Name: "chromedriver.zip",
	Hash: "5ed1a7d0dd2d2826a752a8fb0dd85776ae3e85d5a9704462c7c2927d6ac87e9c",
	Rename: []string{
		"chromedriver-linux64", "chromedriver",
	},
}

// minGeckodriver is the oldest geckodriver release whose command-line
// interface matches what the scripts pass.
var minGeckodriver = semver.MustParse("0.24.0")

// GeckodriverFile asks the GitHub releases API for the latest
// geckodriver and returns a description of its linux64 asset.
func GeckodriverFile(ctx context.Context) (File, error) {
	client := github.NewClient(nil)
	rel, _, err := client.Repositories.GetLatestRelease(ctx, "mozilla", "geckodriver")
	if err != nil {
		return File{}, fmt.Errorf("error fetching the latest geckodriver release: %v", err)
	}

	v, err := semver.Parse(strings.TrimPrefix(rel.GetTagName(), "v"))
	if err != nil {
		return File{}, fmt.Errorf("error parsing geckodriver tag %q: %v", rel.GetTagName(), err)
	}
	if v.LT(minGeckodriver) {
		return File{}, fmt.Errorf("latest geckodriver is %s, need at least %s", v, minGeckodriver)
	}

	for _, asset := range rel.Assets {
		name := asset.GetName()
		if strings.Contains(name, "linux64") && strings.HasSuffix(name, ".tar.gz") {
			return File{
				URL:  asset.GetBrowserDownloadURL(),
				Name: "geckodriver.tar.gz",
			}, nil
		}
	}
	return File{}, fmt.Errorf("geckodriver release %s has no linux64 asset", v)
}

// ChromeSnapshotFile looks up the latest Chromium continuous-build
// snapshot in its GCS bucket and returns a description of it.
func ChromeSnapshotFile(ctx context.Context) (File, error) {
	const (
		// Bucket URL: https://console.cloud.google.com/storage/browser/chromium-browser-snapshots
		storageBktName = "chromium-browser-snapshots"
		prefixLinux64  = "Linux_x64"
		lastChangeFile = "Linux_x64/LAST_CHANGE"
		chromeFilename = "chrome-linux.zip"
	)

	client, err := storage.NewClient(ctx, option.WithHTTPClient(http.DefaultClient))
	if err != nil {
		return File{}, fmt.Errorf("cannot create a storage client for downloading the chrome browser: %v", err)
	}

	bkt := client.Bucket(storageBktName)
	r, err := bkt.Object(lastChangeFile).NewReader(ctx)
	if err != nil {
		return File{}, fmt.Errorf("cannot create a reader for gs://%s/%s: %v", storageBktName, lastChangeFile, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("cannot read gs://%s/%s: %v", storageBktName, lastChangeFile, err)
	}

	latestChromeBuild := strings.TrimSpace(string(data))
	latestChromePackage := path.Join(prefixLinux64, latestChromeBuild, chromeFilename)
	attrs, err := bkt.Object(latestChromePackage).Attrs(ctx)
	if err != nil {
		return File{}, fmt.Errorf("cannot get attrs of gs://%s/%s: %v", storageBktName, latestChromePackage, err)
	}

	return File{
		URL:      attrs.MediaLink,
		Name:     chromeFilename,
		Hash:     hex.EncodeToString(attrs.MD5),
		HashType: "md5",
	}, nil
}

// AllFiles returns every binary the WebDriver scripts may need.
func AllFiles(ctx context.Context) ([]File, error) {
	files := []File{ChromeDriverFile}

	gecko, err := GeckodriverFile(ctx)
	if err != nil {
		return nil, err
	}
	files = append(files, gecko)

	chrome, err := ChromeSnapshotFile(ctx)
	if err != nil {
		return nil, err
	}
	return append(files, chrome), nil
}

// Download fetches a file if it is not already present with the
// expected hash, then extracts and renames it. If directory is empty,
// the file lands in the current directory.
func Download(file File, directory string) error {
	file.directory = directory

	if file.Hash != "" && fileSameHash(file) {
		glog.Infof("Skipping file %q which has already been downloaded.", file.Name)
	} else {
		glog.Infof("Downloading %q from %q", file.Name, file.URL)
		if err := downloadFile(file); err != nil {
			return err
		}
	}

	if err := extractArchive(file); err != nil {
		return err
	}

	if rename := file.Rename; len(rename) == 2 {
		from := filepath.Join(file.directory, rename[0])
		to := filepath.Join(file.directory, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			glog.Warningf("Error renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// DownloadAll fetches every known file into directory, in parallel.
func DownloadAll(ctx context.Context, directory string) error {
	files, err := AllFiles(ctx)
	if err != nil {
		return err
	}

	var wg errgroup.Group
	for _, file := range files {
		file := file
		wg.Go(func() error {
			if err := Download(file, directory); err != nil {
				return fmt.Errorf("error handling %s: %s", file.Name, err)
			}
			return nil
		})
	}
	return wg.Wait()
}

func downloadFile(file File) (err error) {
	f, err := os.Create(file.Path())
	if err != nil {
		return fmt.Errorf("error creating %q: %v", file.Path(), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", file.Path(), closeErr)
		}
	}()

	resp, err := http.Get(file.URL)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: got status %s downloading %q", file.Name, resp.Status, file.URL)
	}

	if file.Hash == "" {
		if _, err := io.Copy(f, resp.Body); err != nil {
			return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.URL, err)
		}
		return nil
	}

	h := newHash(file.HashType)
	if _, err := io.Copy(io.MultiWriter(f, h), resp.Body); err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.URL, err)
	}
	if sum := hex.EncodeToString(h.Sum(nil)); sum != file.Hash {
		return fmt.Errorf("%s: got %s hash %q, want %q", file.Name, hashName(file.HashType), sum, file.Hash)
	}
	return nil
}

func newHash(hashType string) hash.Hash {
	if strings.ToLower(hashType) == "md5" {
		return md5.New()
	}
	return sha256.New()
}

func hashName(hashType string) string {
	if strings.ToLower(hashType) == "md5" {
		return "md5"
	}
	return "sha256"
}

func fileSameHash(file File) bool {
	if _, err := os.Stat(file.Path()); err != nil {
		return false
	}
	f, err := os.Open(file.Path())
	if err != nil {
		return false
	}
	defer f.Close()

	h := newHash(file.HashType)
	if _, err := io.Copy(h, f); err != nil {
		return false
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if sum != file.Hash {
		glog.Warningf("File %q: got hash %q, expect hash %q", file.Name, sum, file.Hash)
		return false
	}
	return true
}

func extractArchive(file File) error {
	dir := "."
	if file.directory != "" {
		dir = file.directory
	}

	var cmd []string
	switch path.Ext(file.Name) {
	case ".zip":
		cmd = []string{"unzip", "-d", dir, "-o", file.Path()}
	case ".gz":
		cmd = []string{"tar", "-xzf", file.Path(), "-C", dir}
	case ".bz2":
		cmd = []string{"tar", "-xjf", file.Path(), "-C", dir}
	default:
		return nil
	}

	glog.Infof("Extracting %q", file.Path())
	if err := exec.Command(cmd[0], cmd[1:]...).Run(); err != nil {
		return fmt.Errorf("error extracting %q: %v", file.Name, err)
	}
	return nil
}
