package extract

import (
	"github.com/tykimikk/ndash-extract/internal/llm"
)

// MergePatientFields overlays the remote result on top of the pattern
// fallback: remote fields win when non-empty, fallback values fill the gaps.
// Booleans OR together: a false from the remote schema means "absent", not
// a denial, so it never suppresses a pattern match.
func MergePatientFields(remote, fallback llm.PatientFields) llm.PatientFields {
	out := remote

	out.Name = pick(remote.Name, fallback.Name)
	out.Gender = pick(remote.Gender, fallback.Gender)
	out.DateOfBirth = pick(remote.DateOfBirth, fallback.DateOfBirth)
	out.ChiefComplaint = pick(remote.ChiefComplaint, fallback.ChiefComplaint)
	out.PresentIllness = pick(remote.PresentIllness, fallback.PresentIllness)

	out.VitalSigns.Temperature = pick(remote.VitalSigns.Temperature, fallback.VitalSigns.Temperature)
	out.VitalSigns.HeartRate = pick(remote.VitalSigns.HeartRate, fallback.VitalSigns.HeartRate)
	out.VitalSigns.RespiratoryRate = pick(remote.VitalSigns.RespiratoryRate, fallback.VitalSigns.RespiratoryRate)
	out.VitalSigns.BloodPressure = pick(remote.VitalSigns.BloodPressure, fallback.VitalSigns.BloodPressure)

	rh, fh := remote.MedicalHistory, fallback.MedicalHistory
	out.MedicalHistory.Hypertension = rh.Hypertension || fh.Hypertension
	out.MedicalHistory.CoronaryHeartDisease = rh.CoronaryHeartDisease || fh.CoronaryHeartDisease
	out.MedicalHistory.Arrhythmia = rh.Arrhythmia || fh.Arrhythmia
	out.MedicalHistory.Diabetes = rh.Diabetes || fh.Diabetes
	out.MedicalHistory.ThyroidDisease = rh.ThyroidDisease || fh.ThyroidDisease
	out.MedicalHistory.Asthma = rh.Asthma || fh.Asthma
	out.MedicalHistory.COPD = rh.COPD || fh.COPD
	out.MedicalHistory.ChronicKidneyDisease = rh.ChronicKidneyDisease || fh.ChronicKidneyDisease
	out.MedicalHistory.HepatitisB = rh.HepatitisB || fh.HepatitisB
	out.MedicalHistory.Cirrhosis = rh.Cirrhosis || fh.Cirrhosis
	out.MedicalHistory.Tuberculosis = rh.Tuberculosis || fh.Tuberculosis
	out.MedicalHistory.HIV = rh.HIV || fh.HIV
	out.MedicalHistory.OtherCardiovascular = pickList(rh.OtherCardiovascular, fh.OtherCardiovascular)
	out.MedicalHistory.OtherEndocrine = pickList(rh.OtherEndocrine, fh.OtherEndocrine)
	out.MedicalHistory.OtherRespiratory = pickList(rh.OtherRespiratory, fh.OtherRespiratory)
	out.MedicalHistory.OtherKidney = pickList(rh.OtherKidney, fh.OtherKidney)
	out.MedicalHistory.OtherLiver = pickList(rh.OtherLiver, fh.OtherLiver)
	out.MedicalHistory.OtherInfectious = pickList(rh.OtherInfectious, fh.OtherInfectious)

	rn, fn := remote.NeuroExam, fallback.NeuroExam
	out.NeuroExam.MotorStrength.LeftUpper = pick(rn.MotorStrength.LeftUpper, fn.MotorStrength.LeftUpper)
	out.NeuroExam.MotorStrength.RightUpper = pick(rn.MotorStrength.RightUpper, fn.MotorStrength.RightUpper)
	out.NeuroExam.MotorStrength.LeftLower = pick(rn.MotorStrength.LeftLower, fn.MotorStrength.LeftLower)
	out.NeuroExam.MotorStrength.RightLower = pick(rn.MotorStrength.RightLower, fn.MotorStrength.RightLower)
	out.NeuroExam.TonguePosition = pick(rn.TonguePosition, fn.TonguePosition)
	out.NeuroExam.BabinskiSign = pick(rn.BabinskiSign, fn.BabinskiSign)
	out.NeuroExam.NeckStiffness = rn.NeckStiffness || fn.NeckStiffness
	out.NeuroExam.KernigSign = rn.KernigSign || fn.KernigSign
	out.NeuroExam.BrudzinskiSign = rn.BrudzinskiSign || fn.BrudzinskiSign
	out.NeuroExam.CranialNerveFindings = pickList(rn.CranialNerveFindings, fn.CranialNerveFindings)

	rf, ff := remote.FamilyHistory, fallback.FamilyHistory
	out.FamilyHistory.HereditaryDiseases = pickList(rf.HereditaryDiseases, ff.HereditaryDiseases)
	out.FamilyHistory.InfectiousDiseases = pickList(rf.InfectiousDiseases, ff.InfectiousDiseases)
	out.FamilyHistory.CancerHistory = pickList(rf.CancerHistory, ff.CancerHistory)
	out.FamilyHistory.FatherStatus = pick(rf.FatherStatus, ff.FatherStatus)
	out.FamilyHistory.MotherStatus = pick(rf.MotherStatus, ff.MotherStatus)

	out.Habits.Smoking = remote.Habits.Smoking || fallback.Habits.Smoking
	out.Habits.SmokingDetail = pick(remote.Habits.SmokingDetail, fallback.Habits.SmokingDetail)
	out.Habits.Alcohol = remote.Habits.Alcohol || fallback.Habits.Alcohol
	out.Habits.AlcoholDetail = pick(remote.Habits.AlcoholDetail, fallback.Habits.AlcoholDetail)

	if len(out.Allergies) == 0 {
		out.Allergies = fallback.Allergies
	}
	if len(out.SurgicalHistory) == 0 {
		out.SurgicalHistory = fallback.SurgicalHistory
	}
	if len(out.DrugUseHistory) == 0 {
		out.DrugUseHistory = fallback.DrugUseHistory
	}
	if len(out.VaccinationHistory) == 0 {
		out.VaccinationHistory = fallback.VaccinationHistory
	}
	out.Diagnoses = pickList(remote.Diagnoses, fallback.Diagnoses)

	return out
}

func pick(remote, fallback string) string {
	if remote != "" {
		return remote
	}
	return fallback
}

func pickList(remote, fallback []string) []string {
	if len(remote) > 0 {
		return remote
	}
	return fallback
}
