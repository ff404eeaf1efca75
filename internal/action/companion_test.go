package action_test

import (
	"errors"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/kennyg/cppkit/internal/action"
	"github.com/kennyg/cppkit/internal/companion"
)

var _ = Describe("CreateCompanion", func() {
	var (
		fs    afero.Fs
		fake  *fakeHost
		act   *action.CreateCompanion
		clock time.Time
	)

	p := filepath.FromSlash

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		fake = &fakeHost{}
		clock = time.Date(2026, time.October, 15, 9, 4, 7, 0, time.Local)
		act = &action.CreateCompanion{
			Host:   fake,
			Fs:     fs,
			Now:    func() time.Time { return clock },
			Banner: companion.DefaultBanner(),
		}
	})

	Context("when no file is active", func() {
		It("warns and writes nothing", func() {
			err := act.Run()
			Expect(errors.Is(err, action.ErrAborted)).To(BeTrue())
			Expect(fake.noticesOf("warning")).To(HaveLen(1))
			Expect(fake.notices).To(HaveLen(1))
			Expect(fake.opened).To(BeEmpty())
		})
	})

	Context("when the active file is not a header", func() {
		BeforeEach(func() {
			fake.file = p("/proj/notes.txt")
		})

		It("only shows a warning", func() {
			err := act.Run()
			Expect(errors.Is(err, action.ErrAborted)).To(BeTrue())
			Expect(fake.notices).To(HaveLen(1))
			Expect(fake.notices[0].Severity).To(Equal("warning"))
			Expect(fake.notices[0].Message).To(ContainSubstring(".hpp"))

			exists, _ := afero.Exists(fs, p("/proj/notes.cpp"))
			Expect(exists).To(BeFalse())
		})

		It("treats an upper-case extension as unsupported", func() {
			fake.file = p("/proj/widget.H")
			Expect(errors.Is(act.Run(), action.ErrAborted)).To(BeTrue())

			exists, _ := afero.Exists(fs, p("/proj/widget.cpp"))
			Expect(exists).To(BeFalse())
		})
	})

	Context("with a co-located header", func() {
		BeforeEach(func() {
			fake.file = p("/proj/lib/foo.h")
		})

		It("writes the banner and a quoted include", func() {
			Expect(act.Run()).To(Succeed())

			data, err := afero.ReadFile(fs, p("/proj/lib/foo.cpp"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`/*
 * Copyright (c) All rights reserved.
 *
 * @file   foo.cpp
 * @author Your Name
 * @email  you@example.com
 * @date   October 15, 2026 09:04:07
 */

#include "foo.h"


`))
		})

		It("opens the new file and reports success once", func() {
			Expect(act.Run()).To(Succeed())
			Expect(fake.opened).To(Equal([]string{p("/proj/lib/foo.cpp")}))

			infos := fake.noticesOf("info")
			Expect(infos).To(HaveLen(1))
			Expect(infos[0].Message).To(ContainSubstring("foo.cpp"))
		})

		It("honours a custom source extension", func() {
			act.SourceExt = ".cc"
			Expect(act.Run()).To(Succeed())

			exists, _ := afero.Exists(fs, p("/proj/lib/foo.cc"))
			Expect(exists).To(BeTrue())
		})
	})

	Context("with a public header and a sibling src directory", func() {
		BeforeEach(func() {
			Expect(fs.MkdirAll(p("/proj/src"), 0755)).To(Succeed())
			fake.file = p("/proj/include/proj/widget.hpp")
		})

		It("writes into src with an angle-bracket include", func() {
			Expect(act.Run()).To(Succeed())

			data, err := afero.ReadFile(fs, p("/proj/src/widget.cpp"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("\n#include <proj/widget.hpp>\n\n\n"))
		})
	})

	Context("when the companion already exists", func() {
		const existing = "// hand written\n"

		BeforeEach(func() {
			fake.file = p("/proj/lib/base.h")
			Expect(afero.WriteFile(fs, p("/proj/lib/base.cpp"), []byte(existing), 0644)).To(Succeed())
		})

		It("leaves it untouched and opens it", func() {
			Expect(act.Run()).To(Succeed())

			data, err := afero.ReadFile(fs, p("/proj/lib/base.cpp"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(existing))

			Expect(fake.opened).To(Equal([]string{p("/proj/lib/base.cpp")}))
			Expect(fake.noticesOf("info")).To(HaveLen(1))
			Expect(fake.noticesOf("info")[0].Message).To(ContainSubstring("already exists"))
		})
	})

	Context("when the write fails", func() {
		BeforeEach(func() {
			fake.file = p("/proj/lib/foo.h")
			act.Fs = afero.NewReadOnlyFs(fs)
		})

		It("returns the error without a notice", func() {
			err := act.Run()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, action.ErrAborted)).To(BeFalse())
			Expect(fake.notices).To(BeEmpty())
		})
	})

	Context("when opening the document fails", func() {
		BeforeEach(func() {
			fake.file = p("/proj/lib/foo.h")
			fake.openErr = errors.New("editor crashed")
		})

		It("keeps the file and propagates the error", func() {
			Expect(act.Run()).To(MatchError(ContainSubstring("editor crashed")))

			exists, _ := afero.Exists(fs, p("/proj/lib/foo.cpp"))
			Expect(exists).To(BeTrue())
		})
	})
})
