package config

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.StackInitialCapacity), ShouldEqual, 8)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("stack.initial_capacity")
			So(result, ShouldEqual, "stack_initial_capacity")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the defaults", t, func() {
		So(Setup(), ShouldBeNil)
		Reset(func() {
			viper.Set(key.StackInitialCapacity, Default[key.StackInitialCapacity].Value)
			viper.Set(key.IconsVariant, Default[key.IconsVariant].Value)
		})

		Convey("A negative initial capacity is rejected", func() {
			viper.Set(key.StackInitialCapacity, -1)
			So(validate(), ShouldNotBeNil)
		})

		Convey("An unknown icon variant is rejected", func() {
			viper.Set(key.IconsVariant, "runes")
			err := validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "emoji")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ScriptTrace]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "LIFO_SCRIPT_TRACE")
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ScriptTrace)
		})
	})
}
