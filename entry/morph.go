// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package entry

// ConjugationInfo describes how a surface form relates to the dictionary
// form it was resolved to.
type ConjugationInfo struct {
	DictionaryForm  string `json:"dictionaryForm"`
	ConjugatedForm  string `json:"conjugatedForm"`
	ConjugationType string `json:"conjugationType"`
}

// ParticleBreakdown describes a Korean token split into a stem and an
// attached particle.
type ParticleBreakdown struct {
	Stem               string `json:"stem"`
	Particle           string `json:"particle"`
	ParticleDefinition string `json:"particleDefinition"`
}
