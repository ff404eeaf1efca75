package action_test

import (
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/kennyg/cppkit/internal/action"
	"github.com/kennyg/cppkit/internal/assets"
	"github.com/kennyg/cppkit/internal/host"
)

var _ = Describe("SetupProject", func() {
	var (
		fs   afero.Fs
		fake *fakeHost
		act  *action.SetupProject
	)

	p := filepath.FromSlash
	resources := p("/opt/cppkit/resources")
	root := p("/work/proj")

	seedResources := func() {
		for _, name := range assets.SetupFiles {
			data, err := assets.Read(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(afero.WriteFile(fs, filepath.Join(resources, name), data, 0644)).To(Succeed())
		}
	}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		Expect(fs.MkdirAll(root, 0755)).To(Succeed())
		fake = &fakeHost{root: root}
		act = &action.SetupProject{
			Host:       fake,
			Fs:         fs,
			Candidates: []string{p("/missing/one"), resources, p("/missing/two")},
			Files:      assets.SetupFiles,
		}
	})

	Context("with all resources and an empty destination", func() {
		BeforeEach(seedResources)

		It("copies every file byte for byte", func() {
			result, err := act.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ResourceDir).To(Equal(resources))
			Expect(result.Copied).To(Equal(assets.SetupFiles))
			Expect(result.Skipped).To(BeEmpty())

			for _, name := range assets.SetupFiles {
				want, _ := assets.Read(name)
				got, err := afero.ReadFile(fs, filepath.Join(root, name))
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want), name)
			}
		})

		It("shows exactly one success notice and no prompts", func() {
			_, err := act.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.notices).To(HaveLen(1))
			Expect(fake.notices[0].Severity).To(Equal("info"))
		})
	})

	Context("when some files already exist", func() {
		BeforeEach(func() {
			seedResources()
			Expect(afero.WriteFile(fs, filepath.Join(root, ".clang-format"), []byte("mine"), 0644)).To(Succeed())
			Expect(afero.WriteFile(fs, filepath.Join(root, ".gitignore"), []byte("mine"), 0644)).To(Succeed())
		})

		It("asks before overwriting and honours each answer", func() {
			fake.answers = []string{host.ChoiceNo, host.ChoiceYes}

			result, err := act.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Skipped).To(Equal([]string{".clang-format"}))
			Expect(result.Copied).To(Equal([]string{".clang-tidy", ".clangd", ".gitignore"}))

			kept, _ := afero.ReadFile(fs, filepath.Join(root, ".clang-format"))
			Expect(string(kept)).To(Equal("mine"))

			replaced, _ := afero.ReadFile(fs, filepath.Join(root, ".gitignore"))
			want, _ := assets.Read(".gitignore")
			Expect(replaced).To(Equal(want))

			prompts := fake.noticesOf("warning")
			Expect(prompts).To(HaveLen(2))
			Expect(prompts[0].Choices).To(Equal([]string{host.ChoiceYes, host.ChoiceNo}))
		})

		It("skips on a dismissed prompt", func() {
			fake.answers = []string{"", "yes"}

			result, err := act.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Skipped).To(Equal([]string{".clang-format", ".gitignore"}))
		})
	})

	Context("when no workspace is open", func() {
		BeforeEach(func() {
			seedResources()
			fake.root = ""
		})

		It("shows an error and copies nothing", func() {
			_, err := act.Run()
			Expect(errors.Is(err, action.ErrAborted)).To(BeTrue())
			Expect(fake.noticesOf("error")).To(HaveLen(1))
		})
	})

	Context("when no resource directory exists", func() {
		It("shows an error", func() {
			_, err := act.Run()
			Expect(errors.Is(err, action.ErrAborted)).To(BeTrue())

			errs := fake.noticesOf("error")
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Message).To(ContainSubstring("Resource directory"))
		})
	})

	Context("when a resource file is missing", func() {
		BeforeEach(func() {
			data, _ := assets.Read(".clang-format")
			Expect(afero.WriteFile(fs, filepath.Join(resources, ".clang-format"), data, 0644)).To(Succeed())
		})

		It("reports the failure and keeps what was already copied", func() {
			_, err := act.Run()
			Expect(errors.Is(err, action.ErrAborted)).To(BeTrue())

			errs := fake.noticesOf("error")
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Message).To(ContainSubstring(".clang-tidy"))
			Expect(fake.noticesOf("info")).To(BeEmpty())

			exists, _ := afero.Exists(fs, filepath.Join(root, ".clang-format"))
			Expect(exists).To(BeTrue())
		})
	})

	Context("when the earliest candidate exists", func() {
		BeforeEach(func() {
			seedResources()
			Expect(fs.MkdirAll(p("/missing/one"), 0755)).To(Succeed())
			Expect(afero.WriteFile(fs, p("/missing/one/.clang-format"), []byte("first"), 0644)).To(Succeed())
			act.Files = []string{".clang-format"}
		})

		It("prefers it over later candidates", func() {
			result, err := act.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ResourceDir).To(Equal(p("/missing/one")))

			got, _ := afero.ReadFile(fs, filepath.Join(root, ".clang-format"))
			Expect(string(got)).To(Equal("first"))
		})
	})
})
