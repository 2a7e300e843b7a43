// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package ircnum

import (
	"testing"
)

func TestLookups(t *testing.T) {
	num, ok := FromName("RPL_WELCOME")
	if !ok || num.Code != "001" {
		t.Errorf("FromName(RPL_WELCOME) = %v, %v", num, ok)
	}

	num, ok = FromCode("433")
	if !ok || num.Name != "ERR_NICKNAMEINUSE" {
		t.Errorf("FromCode(433) = %v, %v", num, ok)
	}

	num, ok = FromInt(1)
	if !ok || num.Name != "RPL_WELCOME" {
		t.Errorf("FromInt(1) = %v, %v", num, ok)
	}

	if _, ok = FromName("RPL_NONSENSE"); ok {
		t.Error("unknown name should not resolve")
	}
	if _, ok = FromCode("999"); ok {
		t.Error("unknown code should not resolve")
	}
	if _, ok = FromInt(-1); ok {
		t.Error("negative value should not resolve")
	}
	if _, ok = FromInt(1000); ok {
		t.Error("out-of-range value should not resolve")
	}
}

func TestTableConsistency(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("empty numeric table")
	}
	seen := make(map[string]bool, len(all))
	for _, num := range all {
		if len(num.Code) != 3 {
			t.Errorf("%s has a code of the wrong width: %q", num.Name, num.Code)
		}
		for i := 0; i < 3; i++ {
			if num.Code[i] < '0' || num.Code[i] > '9' {
				t.Errorf("%s has a non-numeric code: %q", num.Name, num.Code)
			}
		}
		if seen[num.Name] {
			t.Errorf("duplicate name %s", num.Name)
		}
		seen[num.Name] = true

		byName, ok := FromName(num.Name)
		if !ok || byName != num {
			t.Errorf("%s does not resolve to itself by name", num.Name)
		}
	}
}

func TestConstants(t *testing.T) {
	if RPL_WELCOME != "001" || RPL_MYINFO != "004" {
		t.Error("welcome burst constants are wrong")
	}
	if ERR_NOSUCHNICK != "401" || ERR_NEEDMOREPARAMS != "461" {
		t.Error("error constants are wrong")
	}
}
